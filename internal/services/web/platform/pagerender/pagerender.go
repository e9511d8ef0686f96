// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/httpx"
	webi18n "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/i18n"
	webtemplates "github.com/tilavaraus/tilavaraus-web/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page. HTMX requests receive the main
// region only; other requests receive the full document.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver module.RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	var resolveLanguage module.ResolveLanguage
	assetBaseURL := ""
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		assetBaseURL = resolver.AssetBaseURL()
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent().Render(ctx, &buf); err != nil {
			return err
		}
		writeHTML(w, statusCode, buf.Bytes())
		return nil
	}

	opts := webtemplates.LayoutOptions{
		Title:        page.Title,
		Lang:         lang,
		Loc:          loc,
		AssetBaseURL: assetBaseURL,
	}
	if r != nil && r.URL != nil {
		opts.CurrentPath = r.URL.Path
		opts.CurrentQuery = r.URL.RawQuery
	}
	if err := webtemplates.Layout(opts).Render(ctx, &buf); err != nil {
		return err
	}
	writeHTML(w, statusCode, buf.Bytes())
	return nil
}

// WriteFragment writes component without page chrome. A nil component
// writes an empty body.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if component == nil {
		component = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	writeHTML(w, statusCode, buf.Bytes())
	return nil
}

func writeHTML(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
