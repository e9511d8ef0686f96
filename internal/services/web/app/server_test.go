package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	module "github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestRootRedirectsToSearch(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/search" {
		t.Fatalf("Location = %q, want /search", got)
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), `id="app-error-state"`) {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestHealthReflectsModuleHealth(t *testing.T) {
	t.Parallel()

	mount := module.Mount{Prefix: "/search/", Handler: statusHandler(http.StatusOK)}

	healthy := newTestHandler(t, Config{Modules: []module.Module{healthModule{stubModule: stubModule{id: "search", mount: mount}, healthy: true}}})
	rr := httptest.NewRecorder()
	healthy.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("healthy response = %d %q", rr.Code, rr.Body.String())
	}

	degraded := newTestHandler(t, Config{Modules: []module.Module{healthModule{stubModule: stubModule{id: "search", mount: mount}, healthy: false}}})
	rr = httptest.NewRecorder()
	degraded.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusServiceUnavailable || !strings.Contains(rr.Body.String(), `"degraded":["search"]`) {
		t.Fatalf("degraded response = %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	healthy.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/up", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /up status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestStaticAssetsAreServed(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), ".search-form-fields") {
		t.Fatalf("static response = %d", rr.Code)
	}

	custom := fstest.MapFS{"extra.css": &fstest.MapFile{Data: []byte("body{}")}}
	rr = httptest.NewRecorder()
	newTestHandler(t, Config{StaticFS: custom}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/extra.css", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "body{}" {
		t.Fatalf("custom static response = %d %q", rr.Code, rr.Body.String())
	}
}

func TestHandlerRecoversPanicsAndLogsRequests(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	panicking := stubModule{id: "boom", mount: module.Mount{Prefix: "/boom/", Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})}}
	h := newTestHandler(t, Config{Modules: []module.Module{panicking}, Logger: zap.New(core)})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom/x", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Fatal("expected panic log")
	}
	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 || entries[0].ContextMap()["status"] != int64(http.StatusInternalServerError) {
		t.Fatalf("request log entries = %+v", entries)
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("expected missing address error")
	}
	srv, err := NewServer(Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	srv.Close()
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.ListenAndServe(ctx); err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}

	var nilServer *Server
	if err := nilServer.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected nil server error")
	}
}
