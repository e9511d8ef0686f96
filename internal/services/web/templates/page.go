package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/i18n"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// MainContentID is the element id of the page main region.
const MainContentID = "main"

// Layout renders the full HTML document around the children in ctx.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "fi"
		}
		appName := T(opts.Loc, "common.appName")
		title := strings.TrimSpace(opts.Title)
		if title == "" {
			title = appName
		} else {
			title = title + " | " + appName
		}

		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet"`)
		h.attr("href", assetURL(opts.AssetBaseURL, "app.css"))
		h.raw(`><script`)
		h.attr("src", htmxScriptURL)
		h.raw(` defer></script></head><body><header class="site-header"><a class="brand"`)
		h.attr("href", routepath.Search)
		h.raw(">")
		h.text(appName)
		h.raw(`</a>`)
		languageSwitcher(h, opts)
		h.raw(`</header>`)
		h.component(ctx, MainContent())
		h.raw(`</body></html>`)
		return h.err
	})
}

// MainContent renders the main region and the children in ctx.
func MainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<main`)
		h.attr("id", MainContentID)
		h.raw(">")
		h.children(ctx)
		h.raw("</main>")
		return h.err
	})
}

func languageSwitcher(h *htmlWriter, opts LayoutOptions) {
	options := webi18n.LanguageOptions(opts.Lang, opts.CurrentPath, opts.CurrentQuery, opts.Loc)
	h.raw(`<nav class="language-switcher"`)
	h.attr("aria-label", T(opts.Loc, "common.language"))
	h.raw("><ul>")
	for _, option := range options {
		h.raw("<li><a")
		h.attr("href", option.URL)
		h.attr("hreflang", option.Tag)
		if option.Active {
			h.raw(` aria-current="true"`)
		}
		h.raw(">")
		h.text(option.Label)
		h.raw("</a></li>")
	}
	h.raw("</ul></nav>")
}

func assetURL(base string, name string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = routepath.StaticPrefix
	}
	return strings.TrimSuffix(base, "/") + "/" + name
}
