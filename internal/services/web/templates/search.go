package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	// SearchFormSlotID is the lazy slot that hosts the search form.
	SearchFormSlotID = "search-form-slot"
	// SearchButtonID names the submit button of the search form.
	SearchButtonID = "searchButton"
)

// SearchPageView configures the search page chrome.
type SearchPageView struct {
	FormURL string
}

// SearchPage renders the page heading and a lazy slot for the form.
func SearchPage(view SearchPageView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="search-page" id="search-page"><h1>`)
		h.text(T(loc, "SearchPage.title"))
		h.raw("</h1>")
		h.component(ctx, LoadGate(LoadGateProps{ID: SearchFormSlotID, URL: view.FormURL}))
		h.raw("</section>")
		return h.err
	})
}

// SearchFormView is the ready state of the search form.
type SearchFormView struct {
	Action     string
	Search     TextInputProps
	Selects    []SelectProps
	Checkboxes []CheckboxProps
}

// SearchForm renders the ready search form. Enter in the text field and the
// search button submit the same form.
func SearchForm(view SearchFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<form class="search-form" id="search-form" method="post"`)
		h.attr("action", view.Action)
		h.attr("hx-post", view.Action)
		h.raw(`><div class="search-form-fields">`)
		h.component(ctx, TextInput(view.Search))
		for _, sel := range view.Selects {
			h.component(ctx, Select(sel))
		}
		for _, box := range view.Checkboxes {
			h.component(ctx, Checkbox(box))
		}
		h.raw(`</div><hr><div class="search-form-actions"><button type="submit"`)
		h.attr("id", SearchButtonID)
		h.attr("name", SearchButtonID)
		h.raw(">")
		h.text(T(loc, "SearchForm.searchButton"))
		h.raw("</button></div></form>")
		return h.err
	})
}
