package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mcoot/hoopsclient/internal/model"
)

// Auth endpoints
const (
	endpointLogin    = "/auth/login"
	endpointRegister = "/auth/register"
)

// AuthAPI calls the authentication endpoints. It returns raw bodies because the
// server's user/token shape varies and is normalized by the session layer.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI wraps c, which is normally an anonymous client
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login posts credentials to /auth/login
func (a *AuthAPI) Login(ctx context.Context, req model.LoginRequest) (json.RawMessage, error) {
	return a.c.DoJSON(ctx, http.MethodPost, endpointLogin, req, "login failed")
}

// Register posts a new account to /auth/register
func (a *AuthAPI) Register(ctx context.Context, req model.RegisterRequest) (json.RawMessage, error) {
	return a.c.DoJSON(ctx, http.MethodPost, endpointRegister, req, "registration failed")
}
