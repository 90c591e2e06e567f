package response

import (
	"github.com/mcoot/hoopsclient/internal/fakeapi/accounts"
)

// LoginUser is the user object returned by /auth/login
type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	TeamName string `json:"teamName,omitempty"`
}

// LoginResponse is the body returned by /auth/login
type LoginResponse struct {
	User  LoginUser `json:"user"`
	Token string    `json:"token"`
}

// LoginResponseFromAccount builds the login body for an account
func LoginResponseFromAccount(a *accounts.Account, token string) LoginResponse {
	return LoginResponse{
		User: LoginUser{
			ID:       a.ID,
			Username: a.Username,
			Email:    a.Email,
			TeamName: a.TeamName,
		},
		Token: token,
	}
}

// RegisterUser is the user object returned by /auth/register. It uses the
// document-store field names the registration service has always returned.
type RegisterUser struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	TeamName string `json:"team_name,omitempty"`
}

// RegisterResponse is the body returned by /auth/register
type RegisterResponse struct {
	User        RegisterUser `json:"user"`
	AccessToken string       `json:"access_token,omitempty"`
	TokenType   string       `json:"token_type,omitempty"`
}

// RegisterResponseFromAccount builds the register body; an empty token is omitted
func RegisterResponseFromAccount(a *accounts.Account, token string) RegisterResponse {
	resp := RegisterResponse{
		User: RegisterUser{
			ID:       a.ID,
			Name:     a.Username,
			Email:    a.Email,
			TeamName: a.TeamName,
		},
		AccessToken: token,
	}
	if token != "" {
		resp.TokenType = "bearer"
	}
	return resp
}

// Health is the body of the health endpoint
type Health struct {
	Status string `json:"status"`
}
