package search

import (
	"context"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	apperrors "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListApplicationPeriods(context.Context) ([]api.ApplicationPeriod, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "errors.backendUnavailable", "reservation api is not configured")
}

func (unavailableGateway) ListParameters(context.Context, api.ParameterKind) ([]api.Parameter, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "errors.backendUnavailable", "reservation api is not configured")
}
