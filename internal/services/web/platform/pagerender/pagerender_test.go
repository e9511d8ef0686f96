package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

type stubResolver struct {
	lang      string
	assetBase string
}

func (s stubResolver) ResolveRequestLanguage(*http.Request) string { return s.lang }

func (s stubResolver) AssetBaseURL() string { return s.assetBase }

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:      "Search",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullPageWithLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/search?search=park", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, stubResolver{lang: "en", assetBase: "https://cdn.example.com/assets/"}, ModulePage{
		Title:      "Search spaces",
		StatusCode: http.StatusAccepted,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`<html lang="en">`,
		"<title>Search spaces | Facility reservation</title>",
		`href="https://cdn.example.com/assets/app.css"`,
		`id="main"`,
		`id="fragment-root"`,
		`href="/search?lang=sv&amp;search=park"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageDefaultsStatusAndFragment(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteModulePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), nil, ModulePage{}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `<main id="main"></main>`) {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestWriteModulePageReturnsRenderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })
	rr := httptest.NewRecorder()
	err := WriteModulePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), nil, ModulePage{Fragment: failing})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body written on render error: %q", rr.Body.String())
	}
}

func TestWriteFragmentWritesBareComponent(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteFragment(rr, httptest.NewRequest(http.MethodGet, "/", nil), 0, textComponent("<p>x</p>")); err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	if rr.Code != http.StatusOK || rr.Body.String() != "<p>x</p>" {
		t.Fatalf("response = %d %q", rr.Code, rr.Body.String())
	}
}

func TestWriteFragmentNilComponentWritesEmptyBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteFragment(rr, nil, http.StatusNotFound, nil); err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	if rr.Code != http.StatusNotFound || rr.Body.Len() != 0 {
		t.Fatalf("response = %d %q", rr.Code, rr.Body.String())
	}
}
