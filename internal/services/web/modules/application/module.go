package application

import (
	"net/http"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/modulehandler"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
)

// Module provides the application wizard routes.
type Module struct {
	gateway ApplicationGateway
	base    modulehandler.Base
}

// New returns an application module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns an application module with explicit gateway and handler dependencies.
func NewWithGateway(gateway ApplicationGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "application" }

// Healthy reports whether the application module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires application route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ApplicationPrefix, Handler: mux}, nil
}
