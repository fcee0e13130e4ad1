package main

import (
	"context"
	"net/http"
	"phishsniper/internal/config"
	"phishsniper/internal/engine"
	"phishsniper/pkg/logger"
	"phishsniper/pkg/whois"
	"phishsniper/pkg/whois/rdap"
	"phishsniper/pkg/whois/whoisnet"

	"go.uber.org/zap"
)

// getWhois returns the configured registration data provider, or nil when lookups are disabled.
func getWhois(ctx context.Context, cfg *config.Config) whois.Client {
	switch cfg.Intel.Provider {
	case config.ProviderWhois:
		return whoisnet.New(cfg.Intel.LookupTimeout)
	case config.ProviderRDAP:
		return rdap.New(&http.Client{Timeout: cfg.Intel.LookupTimeout}, cfg.Intel.RDAPBaseURL)
	case config.ProviderNone, "":
		return nil
	default:
		logger.Fatal(ctx, "unknown intel provider", zap.String("provider", cfg.Intel.Provider))

		return nil
	}
}

// getEngine builds the scoring engine from the configuration. The returned function
// releases the registration store when one is enabled.
func getEngine(ctx context.Context, cfg *config.Config) (engine.Engine, func()) {
	engineCfg, err := engine.NewConfig(cfg)
	if err != nil {
		logger.Fatal(ctx, "invalid scoring policy", zap.Error(err))
	}

	deps := engine.Deps{}
	if client := getWhois(ctx, cfg); client != nil {
		deps.Whois = client
	}

	cleanup := func() {}
	if cfg.Database.Enabled {
		pgsql, closeStrg := getPostgres(ctx, cfg)
		deps.Store = pgsql
		cleanup = closeStrg
	}

	eng, err := engine.New(deps, engineCfg)
	if err != nil {
		cleanup()
		logger.Fatal(ctx, "could not create engine", zap.Error(err))
	}

	return eng, cleanup
}
