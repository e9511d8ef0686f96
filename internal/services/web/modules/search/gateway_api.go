package search

import (
	"context"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
)

// ReferenceClient is the backend surface the search form reads from.
type ReferenceClient interface {
	GetApplicationPeriods(ctx context.Context) ([]api.ApplicationPeriod, error)
	GetParameters(ctx context.Context, kind api.ParameterKind) ([]api.Parameter, error)
}

// NewAPIGateway builds the production search gateway. A nil client yields a
// gateway that reports the backend as unavailable.
func NewAPIGateway(client ReferenceClient) SearchGateway {
	if client == nil {
		return unavailableGateway{}
	}
	if c, ok := client.(*api.Client); ok && c == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client ReferenceClient
}

func (g apiGateway) ListApplicationPeriods(ctx context.Context) ([]api.ApplicationPeriod, error) {
	periods, err := g.client.GetApplicationPeriods(ctx)
	if err != nil {
		return nil, err
	}
	if periods == nil {
		return []api.ApplicationPeriod{}, nil
	}
	return periods, nil
}

func (g apiGateway) ListParameters(ctx context.Context, kind api.ParameterKind) ([]api.Parameter, error) {
	params, err := g.client.GetParameters(ctx, kind)
	if err != nil {
		return nil, err
	}
	if params == nil {
		return []api.Parameter{}, nil
	}
	return params, nil
}
