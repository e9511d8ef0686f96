package application

import (
	"context"
	"net/http"
	"strings"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/loadstate"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/option"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/httpx"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/modal"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/modulehandler"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
	webtemplates "github.com/tilavaraus/tilavaraus-web/internal/services/web/templates"
	"go.uber.org/zap"
)

// applicationService defines the service operations used by wizard handlers.
type applicationService interface {
	loadApplicationPeriod(ctx context.Context, id int) (api.ApplicationPeriod, error)
}

type handlers struct {
	modulehandler.Base
	service applicationService
}

func newHandlers(s applicationService, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// writeNothing answers paths that name no wizard page. The body is empty.
func writeNothing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

func applicationIDFromPath(r *http.Request) string {
	return strings.TrimSpace(r.PathValue(routepath.ApplicationIDPathValue))
}

// handleStep renders the page shell for a wizard step; the step itself
// loads into the lazy slot.
func (h handlers) handleStep(w http.ResponseWriter, r *http.Request) {
	step, ok := ParseStep(r.PathValue(routepath.ApplicationStepPathValue))
	if !ok {
		writeNothing(w, r)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	applicationID := applicationIDFromPath(r)
	h.WritePage(w, r, webtemplates.T(loc, "Application.title"), http.StatusOK,
		webtemplates.ApplicationShell(routepath.ApplicationStepView(applicationID, step.Segment())))
}

// handleView loads the application period and renders the step. A period
// that does not belong to the requested id is discarded.
func (h handlers) handleView(w http.ResponseWriter, r *http.Request) {
	step, ok := ParseStep(r.PathValue(routepath.ApplicationStepPathValue))
	if !ok {
		writeNothing(w, r)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	applicationID := applicationIDFromPath(r)
	retryURL := routepath.ApplicationStepView(applicationID, step.Segment())

	id, err := parseApplicationID(applicationID)
	if err != nil {
		h.WriteLoadError(w, r, err, retryURL, webtemplates.ApplicationSlotID)
		return
	}
	key := option.IDValue(id)
	load := loadstate.Loading[api.ApplicationPeriod](key)
	period, err := h.service.loadApplicationPeriod(httpx.RequestContext(r), id)
	result := loadstate.Result[api.ApplicationPeriod]{Key: key, Value: period, Err: err}
	if err == nil {
		result.Key = option.IDValue(period.ID)
	}
	load, ok = loadstate.Resolve(load, result)
	if !ok {
		h.Logger().Debug("discarded stale application period",
			zap.String("requested", key),
			zap.String("received", result.Key),
		)
		return
	}
	if load.Failed() {
		h.WriteLoadError(w, r, load.Err, retryURL, webtemplates.ApplicationSlotID)
		return
	}
	h.WriteFragment(w, r, http.StatusOK, stepView(applicationID, step, load.Value, lang, loc))
}

// handleCancelOpen shows the cancel dialog.
func (h handlers) handleCancelOpen(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, http.StatusOK, webtemplates.ApplicationCancelDialog(cancelDialogProps(applicationIDFromPath(r), true, loc), loc))
}

// handleCancelClose leaves the wizard when confirmed; otherwise the dialog
// is replaced by its hidden state.
func (h handlers) handleCancelClose(w http.ResponseWriter, r *http.Request, confirmed bool) {
	applicationID := applicationIDFromPath(r)
	if confirmed {
		h.Logger().Info("application cancelled",
			zap.String("application_id", applicationID),
			zap.String("request_id", httpx.RequestIDFromRequest(r)),
		)
		httpx.WriteRedirect(w, r, routepath.Search)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, http.StatusOK, webtemplates.ApplicationCancelDialog(cancelDialogProps(applicationID, false, loc), loc))
}

func (h handlers) cancelCloseHandler() http.HandlerFunc {
	return modal.Handler(h.handleCancelClose)
}
