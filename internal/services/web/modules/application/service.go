package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	apperrors "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/errors"
)

// ApplicationGateway loads the application period behind a wizard.
type ApplicationGateway interface {
	GetApplicationPeriod(ctx context.Context, id int) (api.ApplicationPeriod, error)
}

type service struct {
	gateway ApplicationGateway
}

func newService(gateway ApplicationGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// parseApplicationID validates the path id of an application period.
func parseApplicationID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, apperrors.EK(apperrors.KindNotFound, "errors.applicationPeriodNotFound", "invalid application period id")
	}
	return id, nil
}

func (s service) loadApplicationPeriod(ctx context.Context, id int) (api.ApplicationPeriod, error) {
	period, err := s.gateway.GetApplicationPeriod(ctx, id)
	if err != nil {
		return api.ApplicationPeriod{}, fmt.Errorf("get application period %d: %w", id, err)
	}
	return period, nil
}
