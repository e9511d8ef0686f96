package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "errors.pageTitleNotFound"
	appErrorPageTitleServerErrKey = "errors.pageTitleServerError"
	appErrorHeadingNotFoundKey    = "errors.headingNotFound"
	appErrorHeadingServerErrKey   = "errors.headingServerError"
	appErrorMessageNotFoundKey    = "errors.messageNotFound"
	appErrorMessageServerErrKey   = "errors.messageServerError"
	appErrorBackToSearchKey       = "errors.backToSearch"
)

// LoadErrorID marks the inline error panel rendered for failed fragments.
const LoadErrorID = "load-error"

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the full-page error state for 404 and 5xx responses.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="app-error" id="app-error-state" data-status="`)
		if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
			h.raw("404")
		} else {
			h.raw("500")
		}
		h.raw(`"><h1>`)
		h.text(appErrorHeading(statusCode, loc))
		h.raw("</h1><p>")
		h.text(appErrorMessage(statusCode, loc))
		h.raw("</p><a")
		h.attr("href", routepath.Search)
		h.raw(">")
		h.text(T(loc, appErrorBackToSearchKey))
		h.raw("</a></section>")
		return h.err
	})
}

// ErrorPanelProps configures the inline failed-load panel.
type ErrorPanelProps struct {
	Message  string
	RetryURL string
	// SlotID is the lazy slot the retry response is swapped into.
	SlotID string
}

// ErrorPanel renders a localized failure notice with a retry button that
// re-issues the original fragment request.
func ErrorPanel(props ErrorPanelProps, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		message := props.Message
		if message == "" {
			message = T(loc, "common.loadError")
		}
		h.raw(`<div class="load-error" role="alert"`)
		h.attr("id", LoadErrorID)
		h.raw("><p>")
		h.text(message)
		h.raw(`</p><button type="button" class="retry"`)
		h.attr("hx-get", props.RetryURL)
		if props.SlotID != "" {
			h.attr("hx-target", "#"+props.SlotID)
		}
		h.raw(` hx-swap="innerHTML">`)
		h.text(T(loc, "common.retry"))
		h.raw("</button></div>")
		return h.err
	})
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
