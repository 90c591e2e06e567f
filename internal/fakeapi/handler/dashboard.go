package handler

import (
	"net/http"

	"github.com/mcoot/hoopsclient/internal/fakeapi/apierr"
	"github.com/mcoot/hoopsclient/internal/fakeapi/league"
	"github.com/mcoot/hoopsclient/internal/fakeapi/middleware"
	"github.com/mcoot/hoopsclient/internal/fakeapi/response"
)

const defaultActivityLimit = 10

// DashboardHandler serves the per-user dashboard
type DashboardHandler struct {
	league *league.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(store *league.Store) *DashboardHandler {
	return &DashboardHandler{league: store}
}

// Get handles GET /dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	data, err := h.league.Dashboard(account.ID, defaultActivityLimit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, data)
}

// Stats handles GET /dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	stats, err := h.league.Stats(account.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, stats)
}

// Activity handles GET /dashboard/activity?limit=
func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	limit, err := queryInt(r, "limit", defaultActivityLimit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	activity, err := h.league.Activity(account.ID, limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, activity)
}

// Leagues handles GET /dashboard/leagues
func (h *DashboardHandler) Leagues(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	leagues, err := h.league.Leagues(account.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, leagues)
}

// Simulate handles POST /dev/simulate, playing one round and returning the top ten
func (h *DashboardHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	h.league.SimulateRound()
	response.OK(w, h.league.Top(defaultTopLimit))
}
