// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
	apperrors "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/errors"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/httpx"
	webi18n "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/i18n"
	webtemplates "github.com/tilavaraus/tilavaraus-web/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the app error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized app error response for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolver module.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	var resolveLanguage module.ResolveLanguage
	assetBaseURL := ""
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		assetBaseURL = resolver.AssetBaseURL()
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	fragment := webtemplates.AppErrorState(statusCode, loc)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent().Render(ctx, w); err != nil {
			http.Error(w, PublicMessage(loc, err), statusCode)
		}
		return
	}

	opts := webtemplates.LayoutOptions{
		Title:        webtemplates.AppErrorPageTitle(statusCode, loc),
		Lang:         lang,
		Loc:          loc,
		AssetBaseURL: assetBaseURL,
	}
	if r != nil && r.URL != nil {
		opts.CurrentPath = r.URL.Path
		opts.CurrentQuery = r.URL.RawQuery
	}
	if err := webtemplates.Layout(opts).Render(ctx, w); err != nil {
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver module.RequestResolver) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, resolver)
		return
	}
	var resolveLanguage module.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// WriteLoadError reports a failed lazy fragment load. HTMX requests get a
// 200 error panel with a retry button so the slot swaps it in; other
// requests get the mapped status and the app error page.
func WriteLoadError(w http.ResponseWriter, r *http.Request, err error, resolver module.RequestResolver, retryURL string, slotID string) {
	if w == nil {
		return
	}
	if !httpx.IsHTMXRequest(r) {
		WriteModuleError(w, r, err, resolver)
		return
	}
	var resolveLanguage module.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	message := ""
	if key := apperrors.LocalizationKey(err); key != "" {
		message = PublicMessage(loc, err)
	}
	panel := webtemplates.ErrorPanel(webtemplates.ErrorPanelProps{
		Message:  message,
		RetryURL: retryURL,
		SlotID:   slotID,
	}, loc)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if renderErr := panel.Render(httpx.RequestContext(r), w); renderErr != nil {
		http.Error(w, PublicMessage(loc, renderErr), http.StatusInternalServerError)
	}
}
