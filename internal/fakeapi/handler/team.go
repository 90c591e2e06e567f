package handler

import (
	"net/http"

	"github.com/mcoot/hoopsclient/internal/fakeapi/accounts"
	"github.com/mcoot/hoopsclient/internal/fakeapi/apierr"
	"github.com/mcoot/hoopsclient/internal/fakeapi/league"
	"github.com/mcoot/hoopsclient/internal/fakeapi/middleware"
	"github.com/mcoot/hoopsclient/internal/fakeapi/response"
	"github.com/mcoot/hoopsclient/internal/model"
)

// TeamHandler manages the authenticated user's team
type TeamHandler struct {
	accounts *accounts.Service
	league   *league.Store
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(accountService *accounts.Service, store *league.Store) *TeamHandler {
	return &TeamHandler{accounts: accountService, league: store}
}

// Get handles GET /team
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	team, err := h.league.Team(account.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, team)
}

// AddPlayer handles POST /team/players
func (h *TeamHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req model.AddPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewValidationError("playerId"))
		return
	}
	id, err := playerID(req.PlayerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	team, err := h.league.AddPlayer(account.ID, id, req.Position)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, team)
}

// RemovePlayer handles DELETE /team/players/{id}
func (h *TeamHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	id, err := routePlayerID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	team, err := h.league.RemovePlayer(account.ID, id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, team)
}

// UpdateFormation handles PUT /team/formation
func (h *TeamHandler) UpdateFormation(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req model.UpdateFormationRequest
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if req.Formation == "" {
		apierr.WriteError(w, apierr.NewValidationError("formation"))
		return
	}

	team, err := h.league.SetFormation(account.ID, req.Formation)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, team)
}

// UpdateName handles PUT /team/name
func (h *TeamHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req model.UpdateTeamNameRequest
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if req.TeamName == "" {
		apierr.WriteError(w, apierr.NewValidationError("teamName"))
		return
	}

	team, err := h.league.SetTeamName(account.ID, req.TeamName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if _, err := h.accounts.Update(account.ID, "", req.TeamName); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, team)
}

// Validate handles POST /team/validate
func (h *TeamHandler) Validate(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req model.ValidatePlayerRequest
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	id, err := playerID(req.PlayerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	result, err := h.league.Validate(account.ID, id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.OK(w, result)
}
