package search

import (
	"context"
	"sync"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/form"
)

// fakeGateway implements SearchGateway for tests with configurable return
// values and error injection.
type fakeGateway struct {
	periods      []api.ApplicationPeriod
	periodsErr   error
	purposes     []api.Parameter
	purposesErr  error
	districts    []api.Parameter
	districtsErr error
}

var _ SearchGateway = fakeGateway{}

func (f fakeGateway) ListApplicationPeriods(context.Context) ([]api.ApplicationPeriod, error) {
	if f.periodsErr != nil {
		return nil, f.periodsErr
	}
	if f.periods == nil {
		return []api.ApplicationPeriod{
			{ID: 1, Name: "Kevät 2021", NameFI: "Kevät 2021", NameSV: "Våren 2021", NameEN: "Spring 2021"},
			{ID: 2, Name: "Syksy 2021", NameFI: "Syksy 2021", NameSV: "Hösten 2021"},
		}, nil
	}
	return f.periods, nil
}

func (f fakeGateway) ListParameters(_ context.Context, kind api.ParameterKind) ([]api.Parameter, error) {
	switch kind {
	case api.ParameterPurpose:
		if f.purposesErr != nil {
			return nil, f.purposesErr
		}
		if f.purposes == nil {
			return []api.Parameter{{ID: 3, Name: "Liikunta", NameEN: "Sports"}}, nil
		}
		return f.purposes, nil
	default:
		if f.districtsErr != nil {
			return nil, f.districtsErr
		}
		if f.districts == nil {
			return []api.Parameter{{ID: 7, Name: "Kallio", NameSV: "Berghäll"}}, nil
		}
		return f.districts, nil
	}
}

// blockingGateway holds application periods until ctx is done and fails
// districts immediately.
type blockingGateway struct {
	districtsErr error
	periodsDone  chan error
}

func (g blockingGateway) ListApplicationPeriods(ctx context.Context) ([]api.ApplicationPeriod, error) {
	<-ctx.Done()
	g.periodsDone <- ctx.Err()
	return nil, ctx.Err()
}

func (g blockingGateway) ListParameters(ctx context.Context, kind api.ParameterKind) ([]api.Parameter, error) {
	if kind == api.ParameterDistrict {
		return nil, g.districtsErr
	}
	return []api.Parameter{}, nil
}

// recordingCallback captures OnSearch invocations.
type recordingCallback struct {
	mu    sync.Mutex
	calls []form.Criteria
	err   error
}

func (c *recordingCallback) onSearch(_ context.Context, criteria form.Criteria) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, criteria)
	return c.err
}

func (c *recordingCallback) snapshot() []form.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]form.Criteria(nil), c.calls...)
}
