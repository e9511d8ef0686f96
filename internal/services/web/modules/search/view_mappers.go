package search

import (
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/form"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/option"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
	webtemplates "github.com/tilavaraus/tilavaraus-web/internal/services/web/templates"
)

const (
	priceSelectID          = "price"
	accessibleCheckboxID   = "checkbox1"
	nearestFirstCheckboxID = "checkbox2"
)

// searchFormView maps reference data and form state into the ready form.
// Options are rebuilt on every render; a stored value is shown as selected
// only when the fresh option set contains it.
func searchFormView(data ReferenceData, state form.State, lang string, loc webtemplates.Localizer) webtemplates.SearchFormView {
	placeholder := webtemplates.T(loc, "common.select")
	periodOptions := option.Map(data.ApplicationPeriods, placeholder, lang)
	purposeOptions := option.Map(data.Purposes, placeholder, "")
	districtOptions := option.Map(data.Districts, placeholder, lang)

	return webtemplates.SearchFormView{
		Action: routepath.Search,
		Search: webtemplates.TextInputProps{
			ID:          FieldSearch,
			Name:        FieldSearch,
			Value:       state.Value(FieldSearch),
			Placeholder: webtemplates.T(loc, "SearchForm.searchTermPlaceholder"),
		},
		Selects: []webtemplates.SelectProps{
			selectProps(FieldApplicationRound, webtemplates.T(loc, "SearchForm.applicationRound"), periodOptions, state),
			selectProps(FieldPurpose, webtemplates.T(loc, "SearchForm.purpose"), purposeOptions, state),
			selectProps(FieldDistrict, webtemplates.T(loc, "SearchForm.district"), districtOptions, state),
			{
				ID:       priceSelectID,
				Label:    webtemplates.T(loc, "SearchForm.price"),
				Options:  []option.Option{},
				Disabled: true,
			},
		},
		Checkboxes: []webtemplates.CheckboxProps{
			{ID: accessibleCheckboxID, Label: webtemplates.T(loc, "SearchForm.accessible"), Disabled: true},
			{ID: nearestFirstCheckboxID, Label: webtemplates.T(loc, "SearchForm.nearestFirst"), Disabled: true},
		},
	}
}

func selectProps(field string, label string, options []option.Option, state form.State) webtemplates.SelectProps {
	selected, ok := option.Selected(state.Value(field), options)
	props := webtemplates.SelectProps{
		ID:      field,
		Name:    field,
		Label:   label,
		Options: options,
	}
	if ok {
		props.Selected = selected.Value
	}
	return props
}

// searchPageView points the lazy form slot at the fragment for state.
func searchPageView(state form.State) webtemplates.SearchPageView {
	return webtemplates.SearchPageView{FormURL: routepath.SearchFormWithQuery(state.Criteria().Query())}
}
