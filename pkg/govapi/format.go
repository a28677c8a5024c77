package govapi

//
// Response formats
//

// ResponseFormat is the serialization requested using the URL suffix.
type ResponseFormat string

const (
	// FormatJSON requests a JSON response. This is the only format that
	// [*JSONClient] knows how to decode.
	FormatJSON = ResponseFormat("json")

	// FormatXML requests an XML response.
	FormatXML = ResponseFormat("xml")

	// FormatRSS requests an RSS response.
	FormatRSS = ResponseFormat("rss")
)

// SupportedFormats returns the formats accepted by the service.
func SupportedFormats() []ResponseFormat {
	return []ResponseFormat{FormatJSON, FormatXML, FormatRSS}
}

// ValidateFormat returns the format itself when it is supported and
// otherwise an [*ErrInvalidFormat] naming the offending value.
func ValidateFormat(format ResponseFormat) (ResponseFormat, error) {
	switch format {
	case FormatJSON, FormatXML, FormatRSS:
		return format, nil
	default:
		return "", &ErrInvalidFormat{Format: format}
	}
}
