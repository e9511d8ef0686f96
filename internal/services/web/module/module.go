// Package module defines the feature contract used by web composition.
package module

import "net/http"

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// RequestResolver resolves request-scoped rendering state for shared page
// and error rendering.
type RequestResolver interface {
	ResolveRequestLanguage(r *http.Request) string
	AssetBaseURL() string
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules with gateway dependencies implement this
// so the health endpoint can derive service health without centralizing
// client knowledge.
type HealthReporter interface {
	Healthy() bool
}
