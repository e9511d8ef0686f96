package application

import (
	"net/http"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ApplicationStepPattern, h.handleStep)
	mux.HandleFunc(http.MethodGet+" "+routepath.ApplicationViewPattern, h.handleView)
	mux.HandleFunc(http.MethodGet+" "+routepath.ApplicationCancelPattern, h.handleCancelOpen)
	mux.HandleFunc(http.MethodPost+" "+routepath.ApplicationCancelPattern, h.cancelCloseHandler())
	mux.HandleFunc(http.MethodGet+" "+routepath.ApplicationPrefix+"{rest...}", writeNothing)
}
