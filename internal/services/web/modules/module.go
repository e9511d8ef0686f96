// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/modules/application"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/modules/search"
	"go.uber.org/zap"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the backend clients and shared config required to
// compose the web module registry. Each client field is typed as the narrow
// interface defined by the consuming module, so modules cannot reach
// backend calls they were not given.
type Dependencies struct {
	AssetBaseURL    string
	Logger          *zap.Logger
	ResolveLanguage module.ResolveLanguage

	// Search module client and submit callback.
	SearchClient search.ReferenceClient
	OnSearch     search.OnSearch

	// Application module client.
	ApplicationClient application.PeriodClient
}
