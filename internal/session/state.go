package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mcoot/hoopsclient/internal/model"
)

// State is the authentication state held by the store.
// IsAuthenticated implies User != nil and Token != "".
type State struct {
	User            *model.UserIdentity `json:"user"`
	Token           string              `json:"-"`
	IsAuthenticated bool                `json:"isAuthenticated"`
	IsLoading       bool                `json:"isLoading"`
}

// Status names the position of a State in the session lifecycle
type Status string

const (
	StatusLoading       Status = "loading"
	StatusAnonymous     Status = "anonymous"
	StatusAuthenticated Status = "authenticated"
)

func loadingState() State {
	return State{IsLoading: true}
}

func anonymousState() State {
	return State{}
}

func authenticatedState(user model.UserIdentity, token string) State {
	return State{User: &user, Token: token, IsAuthenticated: true}
}

// Status reports where the state is in the lifecycle
func (s State) Status() Status {
	switch {
	case s.IsLoading:
		return StatusLoading
	case s.IsAuthenticated:
		return StatusAuthenticated
	default:
		return StatusAnonymous
	}
}

// TokenExpiry reads the exp claim of the token without verifying it.
// ok is false when there is no token, it is not a JWT, or it carries no exp.
func (s State) TokenExpiry() (exp time.Time, ok bool) {
	if s.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}

	date, err := claims.GetExpirationTime()
	if err != nil || date == nil {
		return time.Time{}, false
	}
	return date.Time, true
}

// Expired reports whether the token carries an exp claim at or before now
func (s State) Expired(now time.Time) bool {
	exp, ok := s.TokenExpiry()
	return ok && !now.Before(exp)
}
