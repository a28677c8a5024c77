package govapi

//
// Human readable documentation of the endpoints
//

// docsRoot is the root of the service documentation.
const docsRoot = "http://api.duma.gov.ru/pages/dokumentatsiya/"

// ParamInfo documents an endpoint parameter.
type ParamInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EndpointInfo documents an endpoint.
type EndpointInfo struct {
	Name    string      `json:"name"`
	Summary string      `json:"summary"`
	DocsURL string      `json:"docs_url"`
	Params  []ParamInfo `json:"params,omitempty"`
}

var currentParamInfo = ParamInfo{
	Name:        "current",
	Description: "Select the active (1, true) or inactive (0, false) entries. Omit to select all of them.",
}

// Catalog returns the documentation of all the endpoints.
func Catalog() []EndpointInfo {
	return []EndpointInfo{{
		Name:    EndpointTopics,
		Summary: "List of thematic blocks.",
		DocsURL: docsRoot + "spisok-tematicheskih-blokov",
	}, {
		Name:    EndpointClasses,
		Summary: "List of branches of legislation.",
		DocsURL: docsRoot + "spisok-otrasley-zakonodatelstva",
	}, {
		Name:    EndpointDeputies,
		Summary: "List of State Duma deputies and Federation Council members.",
		DocsURL: docsRoot + "spisok-deputatov-gd-i-chlenov-sf",
		Params: []ParamInfo{{
			Name:        "begin",
			Description: "Beginning of the full name; may contain several letters.",
		}, {
			Name:        "position",
			Description: `Kind of person: "Депутат ГД" (deputy) or "Член СФ" (senator).`,
		}, {
			Name:        "current",
			Description: "Select only the people belonging to the current convocation (1, true) or not (0, false).",
		}},
	}, {
		Name:    EndpointCommittees,
		Summary: "List of committees.",
		DocsURL: docsRoot + "spisok-komitetov",
		Params:  []ParamInfo{currentParamInfo},
	}, {
		Name:    EndpointRegionalOrgans,
		Summary: "List of regional authorities.",
		DocsURL: docsRoot + "spisok-regionalnih-organov-vlasti",
		Params:  []ParamInfo{currentParamInfo},
	}, {
		Name:    EndpointFederalOrgans,
		Summary: "List of federal authorities.",
		DocsURL: docsRoot + "spisok-federalnih-organov-vlasti",
		Params:  []ParamInfo{currentParamInfo},
	}, {
		Name:    EndpointStages,
		Summary: "List of review stages, each with its phases.",
		DocsURL: docsRoot + "spisok-stadiy-rassmotreniya",
	}, {
		Name:    EndpointInstances,
		Summary: "List of review instances.",
		DocsURL: docsRoot + "spisok-instantsiy-rassmotreniya",
		Params:  []ParamInfo{currentParamInfo},
	}, {
		Name:    EndpointPeriods,
		Summary: "List of convocations and sessions.",
		DocsURL: docsRoot + "spisok-sozivov-i-sessiy",
	}, {
		Name:    EndpointSearch,
		Summary: "Search bills. The response contains the bills and the latest events of each bill. All parameters are optional.",
		DocsURL: docsRoot + "poisk-po-zakonoproektam",
		Params:  searchParamsInfo,
	}}
}

var searchParamsInfo = []ParamInfo{{
	Name:        "law_type",
	Description: "Type of bill: 38 federal law, 39 federal constitutional law, 41 law amending the Constitution.",
}, {
	Name: "status",
	Description: "Status of the bill: 1 introduced, 2 under review, 3 in the sample program, " +
		"4 in committee programs, 5 introduced outside programs, 6 review completed, " +
		"7 signed by the President, 8 rejected, 9 withdrawn or returned, " +
		"99 review completed for other reasons.",
}, {
	Name:        "name",
	Description: "Name of the bill.",
}, {
	Name:        "number",
	Description: "Number of the bill.",
}, {
	Name:        "registration_start",
	Description: "Minimum registration date (YYYY-MM-DD).",
}, {
	Name:        "registration_end",
	Description: "Maximum registration date (YYYY-MM-DD).",
}, {
	Name:        "document_number",
	Description: "Number of a document linked to the bill.",
}, {
	Name:        "topic",
	Description: "ID of the thematic block.",
}, {
	Name:        "class",
	Description: "ID of the branch of legislation.",
}, {
	Name:        "federal_subject",
	Description: "ID of the federal authority that introduced the bill.",
}, {
	Name:        "regional_subject",
	Description: "ID of the regional authority that introduced the bill.",
}, {
	Name:        "deputy",
	Description: "ID of the deputy or senator that introduced the bill.",
}, {
	Name:        "responsible_committee",
	Description: "ID of the responsible committee.",
}, {
	Name:        "soexecutor_committee",
	Description: "ID of the co-executor committee.",
}, {
	Name:        "profile_committee",
	Description: "ID of the profile committee.",
}, {
	Name: "search_mode",
	Description: "Search by the events of the bill: 1 all events, 2 last event, 3 expected event. " +
		"Required by event_start, event_end, instance, stage, and phase.",
}, {
	Name:        "event_start",
	Description: "Minimum event date (YYYY-MM-DD).",
}, {
	Name:        "event_end",
	Description: "Maximum event date (YYYY-MM-DD).",
}, {
	Name:        "instance",
	Description: "ID of the review instance.",
}, {
	Name:        "stage",
	Description: "ID of the review stage. Mutually exclusive with phase.",
}, {
	Name:        "phase",
	Description: "ID of the review phase, a finer filter than stage. Mutually exclusive with stage.",
}, {
	Name:        "page",
	Description: "Page number; 1 by default.",
}, {
	Name:        "limit",
	Description: "Results per page: 5, 10, or 20 (default).",
}, {
	Name: "sort",
	Description: "Ordering: name, number, date (descending), date_asc, " +
		"last_event_date (descending, default), last_event_date_asc, responsible_committee.",
}}

// LookupEndpoint returns the documentation of the given endpoint.
func LookupEndpoint(name string) (EndpointInfo, bool) {
	for _, info := range Catalog() {
		if info.Name == name {
			return info, true
		}
	}
	return EndpointInfo{}, false
}
