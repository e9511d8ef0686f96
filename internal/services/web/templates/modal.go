package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ModalOKField is the form field carrying the close outcome.
const ModalOKField = "ok"

// ModalProps configures Modal.
type ModalProps struct {
	Show     bool
	CloseURL string
	// Target is the element id the close response is swapped into.
	Target string
	Title  string
}

// Modal renders a dialog around the children in ctx. A hidden modal writes
// nothing. Backdrop and close post ok=false to CloseURL; confirm posts
// ok=true.
func Modal(props ModalProps, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !props.Show {
			return nil
		}
		h := newHTMLWriter(w)
		h.raw(`<div class="modal" role="dialog" aria-modal="true"`)
		if props.Title != "" {
			h.attr("aria-label", props.Title)
		}
		h.raw(">")

		modalForm(h, props, "modal-backdrop")
		h.raw(`<button type="submit" class="modal-backdrop-button" data-action="backdrop"`)
		h.attr("name", ModalOKField)
		h.raw(` value="false"`)
		h.attr("aria-label", T(loc, "common.close"))
		h.raw(`></button></form>`)

		h.raw(`<section class="modal-content">`)
		if props.Title != "" {
			h.raw("<h2>")
			h.text(props.Title)
			h.raw("</h2>")
		}
		h.children(ctx)
		h.raw(`</section>`)

		modalForm(h, props, "modal-actions")
		h.raw(`<button type="submit" data-action="close"`)
		h.attr("name", ModalOKField)
		h.raw(` value="false">`)
		h.text(T(loc, "common.close"))
		h.raw(`</button><button type="submit" data-action="confirm"`)
		h.attr("name", ModalOKField)
		h.raw(` value="true">`)
		h.text(T(loc, "common.ok"))
		h.raw(`</button></form></div>`)
		return h.err
	})
}

func modalForm(h *htmlWriter, props ModalProps, class string) {
	h.raw(`<form method="post"`)
	h.attr("class", class)
	h.attr("action", props.CloseURL)
	h.attr("hx-post", props.CloseURL)
	if props.Target != "" {
		h.attr("hx-target", "#"+props.Target)
	}
	h.raw(` hx-swap="innerHTML">`)
}
