package application

import (
	"context"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
)

// fakeGateway implements ApplicationGateway for tests with configurable
// return values and error injection.
type fakeGateway struct {
	period *api.ApplicationPeriod
	err    error
}

var _ ApplicationGateway = fakeGateway{}

func (f fakeGateway) GetApplicationPeriod(_ context.Context, id int) (api.ApplicationPeriod, error) {
	if f.err != nil {
		return api.ApplicationPeriod{}, f.err
	}
	if f.period != nil {
		return *f.period, nil
	}
	return api.ApplicationPeriod{
		ID:                     id,
		Name:                   "Nuorten liikuntavuorot",
		NameSV:                 "Ungdomens idrottsturer",
		ApplicationPeriodBegin: "2021-01-01T00:00:00Z",
		ApplicationPeriodEnd:   "2021-01-31T23:59:59Z",
		ReservationPeriodBegin: "2021-03-01",
		ReservationPeriodEnd:   "2021-06-30",
	}, nil
}
