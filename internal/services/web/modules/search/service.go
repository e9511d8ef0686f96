package search

import (
	"context"
	"fmt"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/form"
	"golang.org/x/sync/errgroup"
)

// Registered search form fields.
const (
	FieldSearch           = "search"
	FieldApplicationRound = "application_round"
	FieldPurpose          = "purpose"
	FieldDistrict         = "district"
)

var formFields = []string{FieldSearch, FieldApplicationRound, FieldPurpose, FieldDistrict}

// OnSearch receives the criteria of a submitted search form.
type OnSearch func(ctx context.Context, criteria form.Criteria) error

// SearchGateway loads the reference collections behind the search form.
type SearchGateway interface {
	ListApplicationPeriods(context.Context) ([]api.ApplicationPeriod, error)
	ListParameters(context.Context, api.ParameterKind) ([]api.Parameter, error)
}

// ReferenceData holds the option sources of one form render.
type ReferenceData struct {
	ApplicationPeriods []api.ApplicationPeriod
	Purposes           []api.Parameter
	Districts          []api.Parameter
}

type service struct {
	gateway  SearchGateway
	onSearch OnSearch
}

func newService(gateway SearchGateway, onSearch OnSearch) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, onSearch: onSearch}
}

// loadReferenceData fetches all three collections concurrently. The first
// failure cancels the remaining fetches.
func (s service) loadReferenceData(ctx context.Context) (ReferenceData, error) {
	var data ReferenceData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		periods, err := s.gateway.ListApplicationPeriods(gctx)
		if err != nil {
			return fmt.Errorf("list application periods: %w", err)
		}
		data.ApplicationPeriods = periods
		return nil
	})
	g.Go(func() error {
		purposes, err := s.gateway.ListParameters(gctx, api.ParameterPurpose)
		if err != nil {
			return fmt.Errorf("list purposes: %w", err)
		}
		data.Purposes = purposes
		return nil
	})
	g.Go(func() error {
		districts, err := s.gateway.ListParameters(gctx, api.ParameterDistrict)
		if err != nil {
			return fmt.Errorf("list districts: %w", err)
		}
		data.Districts = districts
		return nil
	})
	if err := g.Wait(); err != nil {
		return ReferenceData{}, err
	}
	return data, nil
}

// submit emits criteria to the configured callback.
func (s service) submit(ctx context.Context, criteria form.Criteria) error {
	if s.onSearch == nil {
		return nil
	}
	if err := s.onSearch(ctx, criteria); err != nil {
		return fmt.Errorf("search callback: %w", err)
	}
	return nil
}

// newFormState registers the search fields and hydrates them from values.
func newFormState(values form.Values) form.State {
	return form.Reduce(form.New(formFields...), form.Hydrate{Values: values})
}
