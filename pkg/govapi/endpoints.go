package govapi

//
// Endpoint convenience methods
//

import (
	"context"
	"net/url"

	"github.com/govapi/govapi/pkg/optional"
)

// Endpoint names.
const (
	EndpointTopics         = "topics"
	EndpointClasses        = "classes"
	EndpointDeputies       = "deputies"
	EndpointCommittees     = "committees"
	EndpointRegionalOrgans = "regional-organs"
	EndpointFederalOrgans  = "federal-organs"
	EndpointStages         = "stages"
	EndpointInstances      = "instances"
	EndpointPeriods        = "periods"
	EndpointSearch         = "search"
)

// Values of [DeputiesQuery] Position.
const (
	// PositionDeputy selects deputies of the State Duma.
	PositionDeputy = "Депутат ГД"

	// PositionSenator selects members of the Federation Council.
	PositionSenator = "Член СФ"
)

// Endpoints contains the endpoint convenience methods. Both [*Client]
// and [*JSONClient] embed it: Output is []byte for the former and the
// decoded JSON value for the latter.
type Endpoints[Output any] struct {
	request func(ctx context.Context, endpoint string, params url.Values) (Output, error)
}

// currentParams returns the query for endpoints accepting "current". We omit
// the parameter when current is None and send 0 or 1 otherwise.
func currentParams(current optional.Value[bool]) url.Values {
	params := url.Values{}
	if !current.IsNone() {
		params.Set("current", boolToIntString(current.Unwrap()))
	}
	return params
}

func boolToIntString(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

// Topics returns the list of thematic blocks.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/spisok-tematicheskih-blokov
func (e *Endpoints[Output]) Topics(ctx context.Context) (Output, error) {
	return e.request(ctx, EndpointTopics, nil)
}

// Classes returns the list of branches of legislation.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/spisok-otrasley-zakonodatelstva
func (e *Endpoints[Output]) Classes(ctx context.Context) (Output, error) {
	return e.request(ctx, EndpointClasses, nil)
}

// DeputiesQuery contains the OPTIONAL parameters of [Endpoints.Deputies].
type DeputiesQuery struct {
	// Begin is the beginning of the full name; it may contain several letters.
	Begin string

	// Position is either [PositionDeputy] or [PositionSenator].
	Position string

	// Current selects people belonging to the current convocation only.
	Current optional.Value[bool]
}

// Values returns the query parameters, omitting the empty ones.
func (q DeputiesQuery) Values() url.Values {
	params := currentParams(q.Current)
	if q.Begin != "" {
		params.Set("begin", q.Begin)
	}
	if q.Position != "" {
		params.Set("position", q.Position)
	}
	return params
}

// Deputies returns the list of State Duma deputies and Federation Council members.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/spisok-deputatov-gd-i-chlenov-sf
func (e *Endpoints[Output]) Deputies(ctx context.Context, query DeputiesQuery) (Output, error) {
	return e.request(ctx, EndpointDeputies, query.Values())
}

// Committees returns the list of committees. Use current to select
// the active (true) or inactive (false) ones.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/spisok-komitetov
func (e *Endpoints[Output]) Committees(ctx context.Context, current optional.Value[bool]) (Output, error) {
	return e.request(ctx, EndpointCommittees, currentParams(current))
}

// RegionalOrgans returns the list of regional authorities. Use current
// to select the active (true) or inactive (false) ones.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/spisok-regionalnih-organov-vlasti
func (e *Endpoints[Output]) RegionalOrgans(ctx context.Context, current optional.Value[bool]) (Output, error) {
	return e.request(ctx, EndpointRegionalOrgans, currentParams(current))
}

// FederalOrgans returns the list of federal authorities. Use current
// to select the active (true) or inactive (false) ones.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/spisok-federalnih-organov-vlasti
func (e *Endpoints[Output]) FederalOrgans(ctx context.Context, current optional.Value[bool]) (Output, error) {
	return e.request(ctx, EndpointFederalOrgans, currentParams(current))
}

// Stages returns the list of review stages and their phases.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/spisok-stadiy-rassmotreniya
func (e *Endpoints[Output]) Stages(ctx context.Context) (Output, error) {
	return e.request(ctx, EndpointStages, nil)
}

// Instances returns the list of review instances. Use current to
// select the active (true) or inactive (false) ones.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/spisok-instantsiy-rassmotreniya
func (e *Endpoints[Output]) Instances(ctx context.Context, current optional.Value[bool]) (Output, error) {
	return e.request(ctx, EndpointInstances, currentParams(current))
}

// Periods returns the list of convocations and sessions.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/spisok-sozivov-i-sessiy
func (e *Endpoints[Output]) Periods(ctx context.Context) (Output, error) {
	return e.request(ctx, EndpointPeriods, nil)
}

// Search searches bills. We pass params through verbatim since the service
// decides which parameters are legal. Use [SearchQuery] to build params
// using named fields.
//
// See http://api.duma.gov.ru/pages/dokumentatsiya/poisk-po-zakonoproektam
func (e *Endpoints[Output]) Search(ctx context.Context, params url.Values) (Output, error) {
	return e.request(ctx, EndpointSearch, params)
}
