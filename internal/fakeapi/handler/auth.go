package handler

import (
	"net/http"

	"github.com/mcoot/hoopsclient/internal/fakeapi/accounts"
	"github.com/mcoot/hoopsclient/internal/fakeapi/apierr"
	"github.com/mcoot/hoopsclient/internal/fakeapi/league"
	"github.com/mcoot/hoopsclient/internal/fakeapi/response"
	"github.com/mcoot/hoopsclient/internal/model"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	accounts *accounts.Service
	league   *league.Store

	// tokenOnRegister makes /auth/register log the new user in
	tokenOnRegister bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountService *accounts.Service, store *league.Store, tokenOnRegister bool) *AuthHandler {
	return &AuthHandler{
		accounts:        accountService,
		league:          store,
		tokenOnRegister: tokenOnRegister,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	var missing []string
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		apierr.WriteError(w, apierr.NewValidationError(missing...))
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Passwords do not match"))
		return
	}

	account, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password, req.TeamName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.league.CreateTeam(account.ID, account.Username, account.TeamName)

	token := ""
	if h.tokenOnRegister {
		token, err = h.accounts.IssueToken(account, false)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
	}

	response.JSON(w, http.StatusCreated, response.RegisterResponseFromAccount(account, token))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		apierr.WriteError(w, apierr.NewValidationError(missing...))
		return
	}

	account, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	token, err := h.accounts.IssueToken(account, req.RememberMe)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, response.LoginResponseFromAccount(account, token))
}
