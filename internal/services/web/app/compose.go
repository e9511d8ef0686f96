package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/tilavaraus/tilavaraus-web/internal/services/web/module"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/routepath"
)

// ComposeInput carries the modules mounted on the root mux.
type ComposeInput struct {
	Modules []module.Module
}

// Compose builds a root mux from modules. Each module owns its prefix and
// the slashless alias of it.
func Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := map[string]string{
		routepath.StaticPrefix: "static",
		routepath.Health:       "health",
	}

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountModule(root, feature, mount, prefix, seen); err != nil {
			return nil, err
		}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			if err := mountModule(root, feature, mount, alias, seen); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, mount module.Mount, prefix string, seen map[string]string) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, mount.Handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	if prefix == routepath.Root {
		return fmt.Errorf("prefix must not be the root path")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	if !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}
