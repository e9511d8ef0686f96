// Package modulehandler provides a composable base for web module handlers.
//
// Modules share handler infrastructure for localization, page rendering,
// lazy fragment rendering, logging and error handling. Handlers embed Base
// rather than duplicating it.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/httpx"
	webi18n "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/i18n"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/pagerender"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/weberror"
	webtemplates "github.com/tilavaraus/tilavaraus-web/internal/services/web/templates"
	"go.uber.org/zap"
)

// Base carries the shared request-scoped resolvers used by module handlers.
type Base struct {
	resolveLanguage module.ResolveLanguage
	assetBaseURL    string
	logger          *zap.Logger
}

// NewBase builds a handler base. A nil logger discards log output.
func NewBase(resolveLanguage module.ResolveLanguage, assetBaseURL string, logger *zap.Logger) Base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Base{
		resolveLanguage: resolveLanguage,
		assetBaseURL:    assetBaseURL,
		logger:          logger,
	}
}

// NewTestBase builds a handler base with request-derived language and no
// log output.
func NewTestBase() Base {
	return NewBase(nil, "", nil)
}

// ResolveRequestLanguage returns the language override for r, if any.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// AssetBaseURL returns the static asset base used by page layouts.
func (b Base) AssetBaseURL() string {
	return b.assetBaseURL
}

// Logger returns the module logger.
func (b Base) Logger() *zap.Logger {
	if b.logger == nil {
		return zap.NewNop()
	}
	return b.logger
}

// PageLocalizer resolves a localizer and language code from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.resolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	b.logError(r, "module request failed", err)
	weberror.WriteModuleError(w, r, err, b)
}

// WriteNotFound renders a 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b)
}

// WriteLoadError renders the failed state of a lazy fragment.
func (b Base) WriteLoadError(w http.ResponseWriter, r *http.Request, err error, retryURL string, slotID string) {
	b.logError(r, "fragment load failed", err)
	weberror.WriteLoadError(w, r, err, b, retryURL, slotID)
}

// WritePage renders a full module page (HTMX-aware) with the given title
// and content fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders component without page chrome.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) {
	if err := pagerender.WriteFragment(w, r, statusCode, component); err != nil {
		b.WriteError(w, r, err)
	}
}

func (b Base) logError(r *http.Request, msg string, err error) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.Error(err)}
	if r != nil {
		fields = append(fields,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", httpx.RequestIDFromRequest(r)),
		)
	}
	b.Logger().Warn(msg, fields...)
}
