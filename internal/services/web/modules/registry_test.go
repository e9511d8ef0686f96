package modules

import (
	"context"
	"testing"

	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	module "github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
)

type stubClient struct{}

func (stubClient) GetApplicationPeriod(context.Context, int) (api.ApplicationPeriod, error) {
	return api.ApplicationPeriod{}, nil
}

func (stubClient) GetApplicationPeriods(context.Context) ([]api.ApplicationPeriod, error) {
	return nil, nil
}

func (stubClient) GetParameters(context.Context, api.ParameterKind) ([]api.Parameter, error) {
	return nil, nil
}

func TestDefaultModulesIncludeStableAreas(t *testing.T) {
	t.Parallel()

	mods := DefaultModules(Dependencies{})
	if len(mods) != 2 {
		t.Fatalf("module count = %d, want %d", len(mods), 2)
	}
	if got := mods[0].ID(); got != "search" {
		t.Fatalf("module[0] id = %q, want %q", got, "search")
	}
	if got := mods[1].ID(); got != "application" {
		t.Fatalf("module[1] id = %q, want %q", got, "application")
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	seen := map[string]string{}
	for _, mod := range DefaultModules(Dependencies{}) {
		mount, err := mod.Mount()
		if err != nil {
			t.Fatalf("Mount(%s) error = %v", mod.ID(), err)
		}
		if previous, ok := seen[mount.Prefix]; ok {
			t.Fatalf("module %q duplicates prefix %q of %q", mod.ID(), mount.Prefix, previous)
		}
		seen[mount.Prefix] = mod.ID()
	}
}

func TestDefaultModulesReportHealthFromClients(t *testing.T) {
	t.Parallel()

	for _, mod := range DefaultModules(Dependencies{}) {
		reporter, ok := mod.(module.HealthReporter)
		if !ok {
			t.Fatalf("module %q does not report health", mod.ID())
		}
		if reporter.Healthy() {
			t.Fatalf("module %q healthy without a client", mod.ID())
		}
	}

	client := stubClient{}
	for _, mod := range DefaultModules(Dependencies{SearchClient: client, ApplicationClient: client}) {
		if !mod.(module.HealthReporter).Healthy() {
			t.Fatalf("module %q unhealthy with a client", mod.ID())
		}
	}
}
