package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/govapi/govapi/internal/util"
	"github.com/mitchellh/go-wordwrap"
)

// endpointColWidth is the minimum width of the text inside an endpoint box.
// The box grows when a line cannot be wrapped within such a width.
const endpointColWidth = 80

// logEndpointItem renders an "endpoint_item" entry. The expected fields are
// "name", "summary", "docs_url", and "params", the latter being a slice
// of "name: description" strings.
func logEndpointItem(w io.Writer, f log.Fields) error {
	name, _ := f.Get("name").(string)
	summary, _ := f.Get("summary").(string)
	docsURL, _ := f.Get("docs_url").(string)
	params, _ := f.Get("params").([]string)

	var lines []string
	wrapped := func(text string, indent string) {
		width := uint(endpointColWidth - len(indent))
		for _, line := range strings.Split(wordwrap.WrapString(text, width), "\n") {
			lines = append(lines, indent+line)
		}
	}
	wrapped(summary, "")
	if docsURL != "" {
		lines = append(lines, docsURL)
	}
	paramColor := color.New(color.FgBlue)
	for _, param := range params {
		pname, description, _ := strings.Cut(param, ": ")
		lines = append(lines, paramColor.Sprint(pname))
		wrapped(description, "    ")
	}

	title := bold.Sprint(name)
	width := util.EscapeAwareRuneCountInString(title)
	for _, line := range lines {
		width = max(width, util.EscapeAwareRuneCountInString(line))
	}
	width = max(width, endpointColWidth)

	fmt.Fprint(w, "┏"+strings.Repeat("━", width+2)+"┓\n")
	fmt.Fprintf(w, "┃ %s ┃\n", util.RightPad(title, width))
	fmt.Fprint(w, "┡"+strings.Repeat("━", width+2)+"┩\n")
	for _, line := range lines {
		fmt.Fprintf(w, "│ %s │\n", util.RightPad(line, width))
	}
	fmt.Fprint(w, "└"+strings.Repeat("─", width+2)+"┘\n")
	return nil
}
