package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/hoopsclient/internal/fakeapi/apierr"
)

// decodeBody decodes the JSON request body into v
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierr.NewInvalidRequestError("invalid request body")
	}
	return nil
}

// queryInt reads a positive integer query parameter, falling back to def
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, apierr.NewInvalidRequestError(name + " must be a positive integer")
	}
	return v, nil
}

// playerID parses a player ID from the route or a request field
func playerID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierr.NewInvalidRequestError("player id must be an integer")
	}
	return id, nil
}

// routePlayerID reads the {id} route variable
func routePlayerID(r *http.Request) (int, error) {
	return playerID(mux.Vars(r)["id"])
}
