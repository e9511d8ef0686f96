package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(markup string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, markup)
}

// text writes escaped text content.
func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name string, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// flag writes a boolean attribute when set.
func (h *htmlWriter) flag(name string, set bool) {
	if set {
		h.raw(" " + name)
	}
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// children renders the children attached to ctx by templ.WithChildren.
func (h *htmlWriter) children(ctx context.Context) {
	children := templ.GetChildren(ctx)
	if children == nil {
		return
	}
	h.component(templ.ClearChildren(ctx), children)
}

// WithChildren returns parent rendered with children attached to its
// context.
func WithChildren(parent templ.Component, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if parent == nil {
			return nil
		}
		if children != nil {
			ctx = templ.WithChildren(ctx, children)
		}
		return parent.Render(ctx, w)
	})
}
