package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ApplicationModalSlotID is the element that hosts the cancel dialog.
const ApplicationModalSlotID = "application-modal"

// StepLink is one entry in the wizard step navigation.
type StepLink struct {
	Label  string
	URL    string
	Active bool
}

// ApplicationPageProps configures the shared wizard chrome.
type ApplicationPageProps struct {
	Heading    string
	PeriodName string
	Steps      []StepLink
	CancelURL  string
}

// ApplicationPage renders the wizard chrome around the step content in ctx.
func ApplicationPage(props ApplicationPageProps, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<article class="application-page"><header class="application-header">`)
		if props.PeriodName != "" {
			h.raw(`<p class="application-period-name">`)
			h.text(props.PeriodName)
			h.raw("</p>")
		}
		h.raw("<h1>")
		h.text(props.Heading)
		h.raw("</h1></header>")

		if len(props.Steps) > 0 {
			h.raw(`<nav class="application-steps"`)
			h.attr("aria-label", T(loc, "Application.steps"))
			h.raw("><ol>")
			for _, step := range props.Steps {
				h.raw("<li><a")
				h.attr("href", step.URL)
				if step.Active {
					h.raw(` aria-current="step"`)
				}
				h.raw(">")
				h.text(step.Label)
				h.raw("</a></li>")
			}
			h.raw("</ol></nav>")
		}

		h.raw(`<div class="application-content">`)
		h.children(ctx)
		h.raw("</div>")

		if props.CancelURL != "" {
			h.raw(`<footer class="application-actions"><a class="application-cancel"`)
			h.attr("href", props.CancelURL)
			h.attr("hx-get", props.CancelURL)
			h.attr("hx-target", "#"+ApplicationModalSlotID)
			h.raw(` hx-swap="innerHTML">`)
			h.text(T(loc, "Application.cancel"))
			h.raw("</a></footer>")
		}
		h.raw("<div")
		h.attr("id", ApplicationModalSlotID)
		h.raw("></div></article>")
		return h.err
	})
}

// ApplicationSlotID is the lazy slot that hosts a wizard step.
const ApplicationSlotID = "application-slot"

// ApplicationShell renders a wizard step before its period has loaded. It
// holds only the lazy slot for the step view.
func ApplicationShell(viewURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="application-shell" id="application-shell">`)
		h.component(ctx, LoadGate(LoadGateProps{ID: ApplicationSlotID, URL: viewURL}))
		h.raw("</div>")
		return h.err
	})
}

// ApplicationPeriodSummaryView is the first wizard page body.
type ApplicationPeriodSummaryView struct {
	Name                   string
	ApplicationPeriodBegin string
	ApplicationPeriodEnd   string
	ReservationPeriodBegin string
	ReservationPeriodEnd   string
}

// ApplicationPeriodSummary renders the period bounds as the backend sent
// them.
func ApplicationPeriodSummary(view ApplicationPeriodSummaryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="application-period-summary" id="application-period-summary"><h2>`)
		h.text(view.Name)
		h.raw("</h2><dl>")
		periodRow(h, T(loc, "Application.applicationPeriod"), view.ApplicationPeriodBegin, view.ApplicationPeriodEnd)
		periodRow(h, T(loc, "Application.reservationPeriod"), view.ReservationPeriodBegin, view.ReservationPeriodEnd)
		h.raw("</dl></section>")
		return h.err
	})
}

func periodRow(h *htmlWriter, label string, begin string, end string) {
	h.raw("<dt>")
	h.text(label)
	h.raw(`</dt><dd><span class="period-begin">`)
	h.text(begin)
	h.raw(`</span> - <span class="period-end">`)
	h.text(end)
	h.raw("</span></dd>")
}

// ApplicationCancelDialog renders the cancel confirmation inside Modal.
func ApplicationCancelDialog(props ModalProps, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			h := newHTMLWriter(w)
			h.raw("<p>")
			h.text(T(loc, "Application.cancelConfirm"))
			h.raw("</p>")
			return h.err
		})
		return WithChildren(Modal(props, loc), body).Render(ctx, w)
	})
}
