package application

import (
	"github.com/a-h/templ"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
	webtemplates "github.com/tilavaraus/tilavaraus-web/internal/services/web/templates"
)

// stepView renders the wizard chrome for step. Only the first page has a
// body of its own.
func stepView(applicationID string, step Step, period api.ApplicationPeriod, lang string, loc webtemplates.Localizer) templ.Component {
	page := webtemplates.ApplicationPage(webtemplates.ApplicationPageProps{
		Heading:    webtemplates.T(loc, step.HeadingKey()),
		PeriodName: period.DisplayName(lang),
		Steps:      stepLinks(applicationID, step, loc),
		CancelURL:  routepath.ApplicationCancel(applicationID),
	}, loc)
	if step != Page1 {
		return page
	}
	return webtemplates.WithChildren(page, webtemplates.ApplicationPeriodSummary(periodSummaryView(period, lang), loc))
}

func stepLinks(applicationID string, active Step, loc webtemplates.Localizer) []webtemplates.StepLink {
	links := make([]webtemplates.StepLink, 0, len(Steps))
	for _, step := range Steps {
		links = append(links, webtemplates.StepLink{
			Label:  webtemplates.T(loc, step.HeadingKey()),
			URL:    routepath.ApplicationStep(applicationID, step.Segment()),
			Active: step == active,
		})
	}
	return links
}

func periodSummaryView(period api.ApplicationPeriod, lang string) webtemplates.ApplicationPeriodSummaryView {
	return webtemplates.ApplicationPeriodSummaryView{
		Name:                   period.DisplayName(lang),
		ApplicationPeriodBegin: period.ApplicationPeriodBegin,
		ApplicationPeriodEnd:   period.ApplicationPeriodEnd,
		ReservationPeriodBegin: period.ReservationPeriodBegin,
		ReservationPeriodEnd:   period.ReservationPeriodEnd,
	}
}

func cancelDialogProps(applicationID string, show bool, loc webtemplates.Localizer) webtemplates.ModalProps {
	return webtemplates.ModalProps{
		Show:     show,
		CloseURL: routepath.ApplicationCancel(applicationID),
		Target:   webtemplates.ApplicationModalSlotID,
		Title:    webtemplates.T(loc, "Application.cancel"),
	}
}
