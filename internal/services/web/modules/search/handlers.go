package search

import (
	"context"
	"net/http"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/form"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/loadstate"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/httpx"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/modulehandler"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
	webtemplates "github.com/tilavaraus/tilavaraus-web/internal/services/web/templates"
	"go.uber.org/zap"
)

// searchService defines the service operations used by search handlers.
type searchService interface {
	loadReferenceData(ctx context.Context) (ReferenceData, error)
	submit(ctx context.Context, criteria form.Criteria) error
}

type handlers struct {
	modulehandler.Base
	service searchService
}

func newHandlers(s searchService, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// handleIndex renders the page chrome with an unresolved form slot.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	state := newFormState(form.ValuesFromQuery(r.URL.Query()))
	h.WritePage(w, r, webtemplates.T(loc, "SearchPage.title"), http.StatusOK, webtemplates.SearchPage(searchPageView(state), loc))
}

// handleForm renders the form once every reference collection is loaded.
// Options are mapped for the request language on each call.
func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	state := newFormState(form.ValuesFromQuery(r.URL.Query()))

	load := loadstate.Loading[ReferenceData](lang)
	data, err := h.service.loadReferenceData(httpx.RequestContext(r))
	load, ok := loadstate.Resolve(load, loadstate.Result[ReferenceData]{Key: lang, Value: data, Err: err})
	if !ok {
		return
	}
	if load.Failed() {
		h.WriteLoadError(w, r, load.Err, routepath.SearchFormWithQuery(state.Criteria().Query()), webtemplates.SearchFormSlotID)
		return
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.SearchForm(searchFormView(load.Value, state, lang, loc), loc))
}

// handleSubmit emits the posted criteria and sends the browser back to the
// search page carrying them, so the form restores its values.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	state := newFormState(form.ValuesFromQuery(r.PostForm))
	criteria := state.Criteria()

	h.Logger().Info("search submitted",
		zap.String("trigger", httpx.HTMXTrigger(r)),
		zap.Any("criteria", criteria),
		zap.String("request_id", httpx.RequestIDFromRequest(r)),
	)
	if err := h.service.submit(httpx.RequestContext(r), criteria); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.SearchWithQuery(criteria.Query()))
}
