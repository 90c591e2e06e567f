package handler

import (
	"net/http"

	"github.com/mcoot/hoopsclient/internal/fakeapi/apierr"
	"github.com/mcoot/hoopsclient/internal/fakeapi/league"
	"github.com/mcoot/hoopsclient/internal/fakeapi/response"
)

// PlayerHandler serves the player market
type PlayerHandler struct {
	league *league.Store
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(store *league.Store) *PlayerHandler {
	return &PlayerHandler{league: store}
}

// List handles GET /players/ and GET /players?position=
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	if position := r.URL.Query().Get("position"); position != "" {
		response.OK(w, h.league.PlayersByPosition(position))
		return
	}
	response.OK(w, h.league.Players())
}

// Get handles GET /players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := routePlayerID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	player, err := h.league.Player(id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, player)
}
