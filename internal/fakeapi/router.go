package fakeapi

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/hoopsclient/internal/fakeapi/accounts"
	"github.com/mcoot/hoopsclient/internal/fakeapi/handler"
	"github.com/mcoot/hoopsclient/internal/fakeapi/league"
	"github.com/mcoot/hoopsclient/internal/fakeapi/middleware"
	"github.com/mcoot/hoopsclient/internal/fakeapi/response"
	basemiddleware "github.com/mcoot/hoopsclient/internal/middleware"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Accounts *accounts.Service
	League   *league.Store
	// TokenOnRegister makes /auth/register return a token
	TokenOnRegister bool
	// EnableDev mounts POST /dev/simulate
	EnableDev bool
}

// NewRouter creates the API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.Accounts, cfg.League, cfg.TokenOnRegister)
	playerHandler := handler.NewPlayerHandler(cfg.League)
	teamHandler := handler.NewTeamHandler(cfg.Accounts, cfg.League)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.League)
	dashboardHandler := handler.NewDashboardHandler(cfg.League)

	authMiddleware := middleware.Auth(cfg.Accounts)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(basemiddleware.Logging(cfg.Logger))

	// Public routes
	r.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/players/", playerHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Team routes
	team := r.PathPrefix("/team").Subrouter()
	team.Use(authMiddleware)
	team.HandleFunc("", teamHandler.Get).Methods(http.MethodGet)
	team.HandleFunc("/players", teamHandler.AddPlayer).Methods(http.MethodPost)
	team.HandleFunc("/players/{id}", teamHandler.RemovePlayer).Methods(http.MethodDelete)
	team.HandleFunc("/formation", teamHandler.UpdateFormation).Methods(http.MethodPut)
	team.HandleFunc("/name", teamHandler.UpdateName).Methods(http.MethodPut)
	team.HandleFunc("/validate", teamHandler.Validate).Methods(http.MethodPost)

	// Leaderboard routes
	leaderboard := r.PathPrefix("/leaderboard").Subrouter()
	leaderboard.Use(authMiddleware)
	leaderboard.HandleFunc("", leaderboardHandler.List).Methods(http.MethodGet)
	leaderboard.HandleFunc("/me", leaderboardHandler.Me).Methods(http.MethodGet)
	leaderboard.HandleFunc("/top", leaderboardHandler.Top).Methods(http.MethodGet)

	// Dashboard routes
	dashboard := r.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(authMiddleware)
	dashboard.HandleFunc("", dashboardHandler.Get).Methods(http.MethodGet)
	dashboard.HandleFunc("/stats", dashboardHandler.Stats).Methods(http.MethodGet)
	dashboard.HandleFunc("/activity", dashboardHandler.Activity).Methods(http.MethodGet)
	dashboard.HandleFunc("/leagues", dashboardHandler.Leagues).Methods(http.MethodGet)

	if cfg.EnableDev {
		r.HandleFunc("/dev/simulate", dashboardHandler.Simulate).Methods(http.MethodPost)
	}

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.Health{Status: "ok"})
}
