package templates

import (
	"net/http"

	"golang.org/x/text/message"
)

// LayoutOptions carries document-level chrome for Layout.
type LayoutOptions struct {
	Title        string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	AssetBaseURL string
}

// LayoutOptionsForRequest builds layout options from the request URL and a
// title catalog key.
func LayoutOptionsForRequest(r *http.Request, titleKey message.Reference, lang string, loc Localizer) LayoutOptions {
	opts := LayoutOptions{
		Title: T(loc, titleKey),
		Lang:  lang,
		Loc:   loc,
	}
	if r != nil && r.URL != nil {
		opts.CurrentPath = r.URL.Path
		opts.CurrentQuery = r.URL.RawQuery
	}
	return opts
}
