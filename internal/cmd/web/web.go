// Package web parses web service flags and launches the browser-facing server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/tilavaraus/tilavaraus-web/internal/platform/cmd"
	"github.com/tilavaraus/tilavaraus-web/internal/platform/config"
	"github.com/tilavaraus/tilavaraus-web/internal/platform/logging"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/app"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/form"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/modules"
	"github.com/tilavaraus/tilavaraus-web/internal/services/web/modules/search"
	"go.uber.org/zap"
)

// DotEnvFile is loaded before the environment is parsed when present.
const DotEnvFile = ".env"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string        `env:"TILAVARAUS_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	APIBaseURL   string        `env:"TILAVARAUS_WEB_API_BASE_URL" envDefault:"http://localhost:8000"`
	APITimeout   time.Duration `env:"TILAVARAUS_WEB_API_TIMEOUT" envDefault:"10s"`
	AssetBaseURL string        `env:"TILAVARAUS_WEB_ASSET_BASE_URL"`
	LogLevel     string        `env:"TILAVARAUS_WEB_LOG_LEVEL" envDefault:"info"`
	LogDev       bool          `env:"TILAVARAUS_WEB_LOG_DEV"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Reservation backend base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Per-call backend timeout")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for static assets")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.LogDev, "log-dev", cfg.LogDev, "Human-readable development logging")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv fills unset environment variables from path.
func LoadDotEnv(path string) error {
	return config.LoadDotEnv(path)
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := newServer(cfg, logger)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func newServer(cfg Config, logger *zap.Logger) (*app.Server, error) {
	client, err := api.New(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout})
	if err != nil {
		// Modules fall back to their unavailable gateways and /up reports degraded.
		logger.Warn("reservation backend not configured", zap.Error(err))
	}
	return app.NewServer(app.Config{
		HTTPAddr:     cfg.HTTPAddr,
		Logger:       logger,
		AssetBaseURL: cfg.AssetBaseURL,
		Modules: modules.DefaultModules(modules.Dependencies{
			AssetBaseURL:      cfg.AssetBaseURL,
			Logger:            logger,
			SearchClient:      client,
			OnSearch:          logSearch(logger),
			ApplicationClient: client,
		}),
	})
}

// logSearch is the default submit callback; results are not rendered by
// this server.
func logSearch(logger *zap.Logger) search.OnSearch {
	return func(_ context.Context, criteria form.Criteria) error {
		logger.Info("search criteria received", zap.Any("criteria", criteria))
		return nil
	}
}
