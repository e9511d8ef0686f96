package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/tilavaraus/tilavaraus-web/internal/platform/timeouts"
	module "github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/httpx"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/modulehandler"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/observability"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/static"
	"go.uber.org/zap"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr        string
	Modules         []module.Module
	Logger          *zap.Logger
	ResolveLanguage module.ResolveLanguage
	AssetBaseURL    string
	// StaticFS overrides the embedded assets.
	StaticFS fs.FS
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler assembles modules, static assets, the health probe and the
// request middleware into one handler.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	root, err := Compose(ComposeInput{Modules: cfg.Modules})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	staticFS := cfg.StaticFS
	if staticFS == nil {
		staticFS = static.FS
	}
	root.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS))))
	root.HandleFunc(routepath.Health, healthHandler(cfg.Modules))

	base := modulehandler.NewBase(cfg.ResolveLanguage, cfg.AssetBaseURL, logger)
	root.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routepath.Root {
			base.WriteNotFound(w, r)
			return
		}
		httpx.WriteRedirect(w, r, routepath.Search)
	})

	return httpx.Chain(root,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(logger),
	), nil
}

// healthHandler reports 503 while any module lacks its backend.
func healthHandler(modules []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed(http.MethodGet)(w, r)
			return
		}
		var degraded []string
		for _, feature := range modules {
			reporter, ok := feature.(module.HealthReporter)
			if ok && !reporter.Healthy() {
				degraded = append(degraded, feature.ID())
			}
		}
		status := http.StatusOK
		state := "ok"
		if len(degraded) > 0 {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		_ = httpx.WriteJSON(w, status, map[string]any{"status": state, "degraded": degraded})
	}
}

// NewServer builds a configured web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close flushes buffered log output.
func (s *Server) Close() {
	if s == nil || s.logger == nil {
		return
	}
	_ = s.logger.Sync()
}
