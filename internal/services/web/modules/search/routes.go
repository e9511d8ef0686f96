package search

import (
	"net/http"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/httpx"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Search, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SearchPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Search, h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.SearchForm, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.SearchForm, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodGet+" "+routepath.SearchPrefix+"{rest...}", h.WriteNotFound)
}
