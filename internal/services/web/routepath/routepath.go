// Package routepath owns the web service URL paths and route patterns.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                     = "/"
	Health                   = "/up"
	StaticPrefix             = "/static/"
	Search                   = "/search"
	SearchPrefix             = "/search/"
	SearchForm               = "/search/form"
	ApplicationPrefix        = "/application/"
	ApplicationStepPattern   = ApplicationPrefix + "{applicationID}/{step}"
	ApplicationViewPattern   = ApplicationPrefix + "{applicationID}/{step}/view"
	ApplicationCancelPattern = ApplicationPrefix + "{applicationID}/cancel"
	ApplicationIDPathValue   = "applicationID"
	ApplicationStepPathValue = "step"
)

// SearchWithQuery returns the search page path carrying query.
func SearchWithQuery(query url.Values) string {
	return withQuery(Search, query)
}

// SearchFormWithQuery returns the search form fragment path carrying query.
func SearchFormWithQuery(query url.Values) string {
	return withQuery(SearchForm, query)
}

// Application returns the root path of one application.
func Application(applicationID string) string {
	return ApplicationPrefix + escapeSegment(applicationID)
}

// ApplicationStep returns the page path of one wizard step.
func ApplicationStep(applicationID string, step string) string {
	return Application(applicationID) + "/" + escapeSegment(step)
}

// ApplicationStepView returns the lazily loaded view of one wizard step.
func ApplicationStepView(applicationID string, step string) string {
	return ApplicationStep(applicationID, step) + "/view"
}

// ApplicationCancel returns the cancel dialog path of one application.
func ApplicationCancel(applicationID string) string {
	return Application(applicationID) + "/cancel"
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	encoded := query.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
