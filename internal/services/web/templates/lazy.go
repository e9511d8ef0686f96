package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LoadGateProps configures a lazily loaded fragment slot.
type LoadGateProps struct {
	ID  string
	URL string
}

// LoadGate renders an empty slot that fetches its content once mounted.
// A newer request for the same slot replaces an in-flight one.
func LoadGate(props LoadGateProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="load-slot"`)
		h.attr("id", props.ID)
		h.attr("hx-get", props.URL)
		h.raw(` hx-trigger="load" hx-sync="this:replace" hx-swap="innerHTML" aria-busy="true"></div>`)
		return h.err
	})
}
