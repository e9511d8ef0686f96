package application

import (
	"context"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
)

// PeriodClient is the backend surface the wizard reads from.
type PeriodClient interface {
	GetApplicationPeriod(ctx context.Context, id int) (api.ApplicationPeriod, error)
}

// NewAPIGateway builds the production application gateway. A nil client
// yields a gateway that reports the backend as unavailable.
func NewAPIGateway(client PeriodClient) ApplicationGateway {
	if client == nil {
		return unavailableGateway{}
	}
	if c, ok := client.(*api.Client); ok && c == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client PeriodClient
}

func (g apiGateway) GetApplicationPeriod(ctx context.Context, id int) (api.ApplicationPeriod, error) {
	return g.client.GetApplicationPeriod(ctx, id)
}
