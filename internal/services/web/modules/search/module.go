package search

import (
	"net/http"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/modulehandler"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
)

// Module provides the search page, its lazily loaded form and the submit
// endpoint.
type Module struct {
	gateway  SearchGateway
	base     modulehandler.Base
	onSearch OnSearch
}

// New returns a search module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a search module with explicit dependencies.
// onSearch may be nil.
func NewWithGateway(gateway SearchGateway, base modulehandler.Base, onSearch OnSearch) Module {
	return Module{gateway: gateway, base: base, onSearch: onSearch}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "search" }

// Healthy reports whether the search module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires search route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.onSearch)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.SearchPrefix, Handler: mux}, nil
}
