package govapi

//
// Bill search parameters
//

import (
	"net/url"
	"strconv"
	"time"
)

// LawType is the type of a bill.
type LawType int

const (
	LawTypeFederal               = LawType(38)
	LawTypeFederalConstitutional = LawType(39)
	LawTypeConstitutionAmendment = LawType(41)
)

// BillStatus is the status of a bill.
type BillStatus int

const (
	BillStatusIntroduced          = BillStatus(1)
	BillStatusUnderReview         = BillStatus(2)
	BillStatusInSampleProgram     = BillStatus(3)
	BillStatusInCommitteePrograms = BillStatus(4)
	BillStatusOutsidePrograms     = BillStatus(5)
	BillStatusReviewCompleted     = BillStatus(6)
	BillStatusSignedByPresident   = BillStatus(7)
	BillStatusRejected            = BillStatus(8)
	BillStatusWithdrawn           = BillStatus(9)
	BillStatusCompletedOther      = BillStatus(99)
)

// SearchMode enables searching by the events of a bill.
type SearchMode int

const (
	SearchModeAllEvents     = SearchMode(1)
	SearchModeLastEvent     = SearchMode(2)
	SearchModeExpectedEvent = SearchMode(3)
)

// SortOrder is the ordering of the search results.
type SortOrder string

const (
	SortByName                 = SortOrder("name")
	SortByNumber               = SortOrder("number")
	SortByDate                 = SortOrder("date")
	SortByDateAsc              = SortOrder("date_asc")
	SortByLastEventDate        = SortOrder("last_event_date")
	SortByLastEventDateAsc     = SortOrder("last_event_date_asc")
	SortByResponsibleCommittee = SortOrder("responsible_committee")
)

// dateLayout is the layout the service uses for dates.
const dateLayout = "2006-01-02"

// SearchQuery names the parameters accepted by [Endpoints.Search]. All the
// fields are OPTIONAL and [SearchQuery.Values] omits zero values. We do not
// validate combinations (e.g., Stage and Phase are mutually exclusive):
// the service is the authority on what is legal.
type SearchQuery struct {
	// LawType is the type of the bill.
	LawType LawType

	// Status is the status of the bill.
	Status BillStatus

	// Name is the name of the bill.
	Name string

	// Number is the number of the bill.
	Number string

	// RegistrationStart is the minimum registration date.
	RegistrationStart time.Time

	// RegistrationEnd is the maximum registration date.
	RegistrationEnd time.Time

	// DocumentNumber is the number of a document linked to the bill.
	DocumentNumber string

	// Topic is the ID of a thematic block (see [Endpoints.Topics]).
	Topic string

	// Class is the ID of a branch of legislation (see [Endpoints.Classes]).
	Class string

	// FederalSubject is the ID of the federal authority that introduced the bill.
	FederalSubject string

	// RegionalSubject is the ID of the regional authority that introduced the bill.
	RegionalSubject string

	// Deputy is the ID of the deputy or senator that introduced the bill.
	Deputy string

	// ResponsibleCommittee is the ID of the responsible committee.
	ResponsibleCommittee string

	// SoexecutorCommittee is the ID of the co-executor committee.
	SoexecutorCommittee string

	// ProfileCommittee is the ID of the profile committee.
	ProfileCommittee string

	// SearchMode enables the event parameters below.
	SearchMode SearchMode

	// EventStart is the minimum event date.
	EventStart time.Time

	// EventEnd is the maximum event date.
	EventEnd time.Time

	// Instance is the ID of a review instance (see [Endpoints.Instances]).
	Instance string

	// Stage is the ID of a review stage (see [Endpoints.Stages]).
	Stage string

	// Phase is the ID of a review phase (see [Endpoints.Stages]).
	Phase string

	// Page is the page number, starting from 1.
	Page int

	// Limit is the page size: 5, 10, or 20.
	Limit int

	// Sort is the ordering of the results.
	Sort SortOrder
}

// Values returns the query parameters.
func (q *SearchQuery) Values() url.Values {
	params := url.Values{}
	setInt := func(key string, value int) {
		if value != 0 {
			params.Set(key, strconv.Itoa(value))
		}
	}
	setString := func(key string, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	setDate := func(key string, value time.Time) {
		if !value.IsZero() {
			params.Set(key, value.Format(dateLayout))
		}
	}
	setInt("law_type", int(q.LawType))
	setInt("status", int(q.Status))
	setString("name", q.Name)
	setString("number", q.Number)
	setDate("registration_start", q.RegistrationStart)
	setDate("registration_end", q.RegistrationEnd)
	setString("document_number", q.DocumentNumber)
	setString("topic", q.Topic)
	setString("class", q.Class)
	setString("federal_subject", q.FederalSubject)
	setString("regional_subject", q.RegionalSubject)
	setString("deputy", q.Deputy)
	setString("responsible_committee", q.ResponsibleCommittee)
	setString("soexecutor_committee", q.SoexecutorCommittee)
	setString("profile_committee", q.ProfileCommittee)
	setInt("search_mode", int(q.SearchMode))
	setDate("event_start", q.EventStart)
	setDate("event_end", q.EventEnd)
	setString("instance", q.Instance)
	setString("stage", q.Stage)
	setString("phase", q.Phase)
	setInt("page", q.Page)
	setInt("limit", q.Limit)
	setString("sort", string(q.Sort))
	return params
}
