package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/option"
)

// SelectProps configures Select.
type SelectProps struct {
	ID       string
	Name     string
	Label    string
	Options  []option.Option
	Selected string
	Disabled bool
}

// Select renders a labelled select. Only an option whose value equals
// Selected is marked selected.
func Select(props SelectProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="field"><label`)
		h.attr("for", props.ID)
		h.raw(">")
		h.text(props.Label)
		h.raw("</label><select")
		h.attr("id", props.ID)
		if props.Name != "" {
			h.attr("name", props.Name)
		}
		h.flag("disabled", props.Disabled)
		h.raw(">")
		for _, opt := range props.Options {
			h.raw("<option")
			h.attr("value", opt.Value)
			h.flag("selected", opt.Value == props.Selected)
			h.raw(">")
			h.text(opt.Label)
			h.raw("</option>")
		}
		h.raw("</select></div>")
		return h.err
	})
}

// TextInputProps configures TextInput.
type TextInputProps struct {
	ID          string
	Name        string
	Value       string
	Placeholder string
}

// TextInput renders a text field.
func TextInput(props TextInputProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="field"><input type="text"`)
		h.attr("id", props.ID)
		h.attr("name", props.Name)
		h.attr("value", props.Value)
		if props.Placeholder != "" {
			h.attr("placeholder", props.Placeholder)
			h.attr("aria-label", props.Placeholder)
		}
		h.raw("></div>")
		return h.err
	})
}

// CheckboxProps configures Checkbox.
type CheckboxProps struct {
	ID       string
	Name     string
	Label    string
	Disabled bool
}

// Checkbox renders a labelled checkbox.
func Checkbox(props CheckboxProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="field field-checkbox"><input type="checkbox"`)
		h.attr("id", props.ID)
		if props.Name != "" {
			h.attr("name", props.Name)
		}
		h.flag("disabled", props.Disabled)
		h.raw("><label")
		h.attr("for", props.ID)
		h.raw(">")
		h.text(props.Label)
		h.raw("</label></div>")
		return h.err
	})
}
