package application

import (
	"context"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	apperrors "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) GetApplicationPeriod(context.Context, int) (api.ApplicationPeriod, error) {
	return api.ApplicationPeriod{}, apperrors.EK(apperrors.KindUnavailable, "errors.backendUnavailable", "reservation api is not configured")
}
