package handler

import (
	"net/http"

	"github.com/mcoot/hoopsclient/internal/fakeapi/apierr"
	"github.com/mcoot/hoopsclient/internal/fakeapi/league"
	"github.com/mcoot/hoopsclient/internal/fakeapi/middleware"
	"github.com/mcoot/hoopsclient/internal/fakeapi/response"
)

// Leaderboard paging defaults
const (
	defaultPage     = 1
	defaultPageSize = 50
	defaultTopLimit = 10
)

// LeaderboardHandler serves the global ranking
type LeaderboardHandler struct {
	league *league.Store
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(store *league.Store) *LeaderboardHandler {
	return &LeaderboardHandler{league: store}
}

// List handles GET /leaderboard?page=&pageSize=
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	pageSize, err := queryInt(r, "pageSize", defaultPageSize)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, h.league.Leaderboard(account.ID, page, pageSize))
}

// Me handles GET /leaderboard/me
func (h *LeaderboardHandler) Me(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	entry, err := h.league.Position(account.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, entry)
}

// Top handles GET /leaderboard/top?limit=
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultTopLimit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, h.league.Top(limit))
}
