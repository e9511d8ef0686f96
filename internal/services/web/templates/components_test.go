package templates

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/option"
	webi18n "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

func render(t *testing.T, c templ.Component, children templ.Component) string {
	t.Helper()
	ctx := context.Background()
	if children != nil {
		ctx = templ.WithChildren(ctx, children)
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func TestModalHiddenWritesNothing(t *testing.T) {
	t.Parallel()

	got := render(t, Modal(ModalProps{Show: false, CloseURL: "/close"}, nil), textComponent("<p>body</p>"))
	if got != "" {
		t.Fatalf("hidden modal output = %q, want empty", got)
	}
}

func TestModalShownRendersOutcomeButtons(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.Finnish)
	got := render(t, Modal(ModalProps{Show: true, CloseURL: "/application/1/cancel", Target: "slot", Title: "Keskeytä"}, loc), textComponent("<p>body</p>"))
	for _, marker := range []string{
		`role="dialog"`,
		`<p>body</p>`,
		`data-action="backdrop" name="ok" value="false"`,
		`data-action="close" name="ok" value="false">Sulje</button>`,
		`data-action="confirm" name="ok" value="true">OK</button>`,
		`hx-post="/application/1/cancel"`,
		`hx-target="#slot"`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("modal missing %q: %q", marker, got)
		}
	}
	if strings.Count(got, "<form") != 2 {
		t.Fatalf("modal forms = %d, want 2", strings.Count(got, "<form"))
	}
}

func TestLoadGateRendersNoInteractiveElements(t *testing.T) {
	t.Parallel()

	got := render(t, LoadGate(LoadGateProps{ID: "slot", URL: "/search/form?search=a&b"}), nil)
	for _, tag := range []string{"<input", "<select", "<button"} {
		if strings.Contains(got, tag) {
			t.Fatalf("load gate contains %q: %q", tag, got)
		}
	}
	for _, marker := range []string{`id="slot"`, `hx-get="/search/form?search=a&amp;b"`, `hx-trigger="load"`, `hx-sync="this:replace"`} {
		if !strings.Contains(got, marker) {
			t.Fatalf("load gate missing %q: %q", marker, got)
		}
	}
}

func TestErrorPanelRendersRetry(t *testing.T) {
	t.Parallel()

	got := render(t, ErrorPanel(ErrorPanelProps{RetryURL: "/search/form", SlotID: "search-form-slot"}, webi18n.Printer(language.English)), nil)
	for _, marker := range []string{`id="load-error"`, `hx-get="/search/form"`, `hx-target="#search-form-slot"`, "Try again", "Loading data failed."} {
		if !strings.Contains(got, marker) {
			t.Fatalf("error panel missing %q: %q", marker, got)
		}
	}
}

func TestSelectMarksOnlyMatchingOption(t *testing.T) {
	t.Parallel()

	options := []option.Option{{Value: "", Label: "Valitse"}, {Value: "1", Label: "A"}, {Value: "2", Label: "B <x>"}}
	got := render(t, Select(SelectProps{ID: "purpose", Name: "purpose", Label: "Käyttötarkoitus", Options: options, Selected: "2"}), nil)
	if strings.Count(got, " selected") != 1 {
		t.Fatalf("selected count = %d: %q", strings.Count(got, " selected"), got)
	}
	if !strings.Contains(got, `<option value="2" selected>B &lt;x&gt;</option>`) {
		t.Fatalf("select output = %q", got)
	}
	if strings.Contains(got, "disabled") {
		t.Fatalf("enabled select rendered disabled: %q", got)
	}
}

func TestSelectDisabledWithoutOptions(t *testing.T) {
	t.Parallel()

	got := render(t, Select(SelectProps{ID: "price", Label: "Hinta", Options: []option.Option{}, Disabled: true}), nil)
	if !strings.Contains(got, `<select id="price" disabled></select>`) {
		t.Fatalf("select output = %q", got)
	}
}

func TestTextInputEscapesValue(t *testing.T) {
	t.Parallel()

	got := render(t, TextInput(TextInputProps{ID: "search", Name: "search", Value: `"park"`}), nil)
	if !strings.Contains(got, `value="&#34;park&#34;"`) {
		t.Fatalf("text input output = %q", got)
	}
}

func TestCheckboxDisabled(t *testing.T) {
	t.Parallel()

	got := render(t, Checkbox(CheckboxProps{ID: "accessible", Label: "x", Disabled: true}), nil)
	if !strings.Contains(got, `<input type="checkbox" id="accessible" disabled>`) {
		t.Fatalf("checkbox output = %q", got)
	}
}

func TestLayoutRendersLanguageSwitcherAndChildren(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.Swedish)
	got := render(t, Layout(LayoutOptions{Title: "Sök", Lang: "sv", Loc: loc, CurrentPath: "/search", CurrentQuery: "search=park"}), textComponent("<p>child</p>"))
	for _, marker := range []string{
		`<html lang="sv">`,
		"<title>Sök | Lokalbokning</title>",
		`href="/static/app.css"`,
		`href="/search?lang=fi&amp;search=park"`,
		`hreflang="sv" aria-current="true"`,
		`<main id="main"><p>child</p></main>`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("layout missing %q: %q", marker, got)
		}
	}
}

func TestAppErrorStateNotFound(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.English)
	got := render(t, AppErrorState(404, loc), nil)
	if !strings.Contains(got, `data-status="404"`) || !strings.Contains(got, "Page not found") {
		t.Fatalf("error state = %q", got)
	}
	if AppErrorPageTitle(503, loc) != "Something went wrong" {
		t.Fatalf("title = %q", AppErrorPageTitle(503, loc))
	}
}

func TestApplicationPageRendersChrome(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.Finnish)
	got := render(t, ApplicationPage(ApplicationPageProps{
		Heading:    "1. Vakiovuoron luominen",
		PeriodName: "Kevät 2021",
		Steps:      []StepLink{{Label: "1", URL: "/application/1/page1", Active: true}, {Label: "2", URL: "/application/1/page2"}},
		CancelURL:  "/application/1/cancel",
	}, loc), textComponent("<p>content</p>"))
	for _, marker := range []string{
		"<h1>1. Vakiovuoron luominen</h1>",
		"Kevät 2021",
		`href="/application/1/page1" aria-current="step"`,
		`<div class="application-content"><p>content</p></div>`,
		`hx-target="#application-modal"`,
		"Keskeytä hakemus",
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("application page missing %q: %q", marker, got)
		}
	}
}
