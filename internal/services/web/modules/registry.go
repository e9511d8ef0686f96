package modules

import (
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/modules/application"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/modules/search"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/modulehandler"
	"go.uber.org/zap"
)

// DefaultModules returns the stable web modules.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		search.NewWithGateway(search.NewAPIGateway(deps.SearchClient), moduleBase(deps, "search"), deps.OnSearch),
		application.NewWithGateway(application.NewAPIGateway(deps.ApplicationClient), moduleBase(deps, "application")),
	}
}

func moduleBase(deps Dependencies, name string) modulehandler.Base {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return modulehandler.NewBase(deps.ResolveLanguage, deps.AssetBaseURL, logger.Named(name))
}
