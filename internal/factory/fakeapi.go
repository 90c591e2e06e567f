package factory

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/hoopsclient/internal/dependencies/clock"
	"github.com/mcoot/hoopsclient/internal/dependencies/random"
	"github.com/mcoot/hoopsclient/internal/fakeapi"
	"github.com/mcoot/hoopsclient/internal/fakeapi/accounts"
	"github.com/mcoot/hoopsclient/internal/fakeapi/league"
)

// FakeAPI contains the wired components of the local stand-in API
type FakeAPI struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Accounts *accounts.Service
	League   *league.Store

	// Handler serves every route
	Handler http.Handler
}

// NewFakeAPI creates the fake API with real clock and randomness
func NewFakeAPI(cfg fakeapi.Config, logger *slog.Logger) *FakeAPI {
	accountsCfg := accounts.DefaultConfig()
	if cfg.Secret != "" {
		accountsCfg.Secret = []byte(cfg.Secret)
	}
	if cfg.TokenTTL != 0 {
		accountsCfg.TokenTTL = cfg.TokenTTL
	}
	return newFakeAPIWithDependencies(cfg, clock.New(), random.New(), accountsCfg, logger)
}

// newFakeAPIWithDependencies creates a FakeAPI with the given dependencies (useful for testing)
func newFakeAPIWithDependencies(cfg fakeapi.Config, clk clock.Clock, rnd random.Random, accountsCfg accounts.Config, logger *slog.Logger) *FakeAPI {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	accountService := accounts.New(clk, accountsCfg)
	store := league.New(clk, rnd, logger)

	return &FakeAPI{
		Clock:    clk,
		Random:   rnd,
		Accounts: accountService,
		League:   store,
		Handler: fakeapi.NewRouter(fakeapi.RouterConfig{
			Logger:          logger,
			Accounts:        accountService,
			League:          store,
			TokenOnRegister: cfg.TokenOnRegister,
			EnableDev:       cfg.EnableDev,
		}),
	}
}
