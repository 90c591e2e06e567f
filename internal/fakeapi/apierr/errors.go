package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/hoopsclient/internal/fakeapi/accounts"
	"github.com/mcoot/hoopsclient/internal/fakeapi/league"
	"github.com/mcoot/hoopsclient/internal/model"
)

// ErrorResponse is the error body the API writes. Detail is a string for
// most errors and a list of ValidationIssue for request validation failures.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ValidationIssue is one entry of a validation error body
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// httpError combines an HTTP status code with a response detail
type httpError struct {
	status int
	detail any
}

// Error implements error interface
func (e *httpError) Error() string {
	if s, ok := e.detail.(string); ok {
		return s
	}
	return "validation error"
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: he.detail})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Account errors
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Invalid email or password"}
	case errors.Is(err, accounts.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, "Could not validate credentials"}
	case errors.Is(err, accounts.ErrEmailExists):
		return &httpError{http.StatusConflict, "Email already registered"}
	case errors.Is(err, accounts.ErrUsernameExists):
		return &httpError{http.StatusConflict, "Username already taken"}
	case errors.Is(err, accounts.ErrAccountNotFound):
		return &httpError{http.StatusNotFound, "User not found"}

	// League errors
	case errors.Is(err, league.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, "Player not found"}
	case errors.Is(err, league.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, "Team not found"}
	case errors.Is(err, league.ErrAlreadyOnTeam):
		return &httpError{http.StatusConflict, "Player already on your team"}
	case errors.Is(err, league.ErrNotOnTeam):
		return &httpError{http.StatusNotFound, "Player is not on your team"}
	case errors.Is(err, league.ErrBudgetExceeded):
		return &httpError{http.StatusBadRequest, "Not enough budget for this player"}
	case errors.Is(err, league.ErrPositionFull):
		return &httpError{http.StatusBadRequest, "No free slot for this position in your formation"}
	case errors.Is(err, league.ErrPositionMismatch):
		return &httpError{http.StatusBadRequest, err.Error()}
	case errors.Is(err, league.ErrFormationConflict):
		return &httpError{http.StatusConflict, "Current roster does not fit this formation"}
	case errors.Is(err, model.ErrUnknownFormation):
		return &httpError{http.StatusBadRequest, "Unknown formation"}

	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates a bad request error with a plain detail
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewValidationError creates a 422 whose detail lists the missing body fields
func NewValidationError(fields ...string) error {
	issues := make([]ValidationIssue, 0, len(fields))
	for _, f := range fields {
		issues = append(issues, ValidationIssue{
			Loc:  []string{"body", f},
			Msg:  f + " is required",
			Type: "missing",
		})
	}
	return &httpError{http.StatusUnprocessableEntity, issues}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "Not authenticated"}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
