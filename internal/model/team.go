package model

import (
	"fmt"
	"sort"
)

// UserTeam is the authenticated user's fantasy team
type UserTeam struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	TeamName    string   `json:"teamName"`
	Budget      float64  `json:"budget"`
	TotalBudget float64  `json:"totalBudget"`
	Formation   string   `json:"formation"`
	Players     []Player `json:"players"`
	Points      int      `json:"points"`
	Rank        *int     `json:"rank,omitempty"`
}

// AddPlayerRequest is the request body for POST /team/players
type AddPlayerRequest struct {
	PlayerID string `json:"playerId"`
	Position string `json:"position,omitempty"`
}

// UpdateFormationRequest is the request body for PUT /team/formation
type UpdateFormationRequest struct {
	Formation string `json:"formation"`
}

// UpdateTeamNameRequest is the request body for PUT /team/name
type UpdateTeamNameRequest struct {
	TeamName string `json:"teamName"`
}

// ValidatePlayerRequest is the request body for POST /team/validate
type ValidatePlayerRequest struct {
	PlayerID string `json:"playerId"`
}

// ValidationResult reports whether a player can be added to the team
type ValidationResult struct {
	Valid           bool     `json:"valid"`
	Message         string   `json:"message,omitempty"`
	BudgetRemaining *float64 `json:"budgetRemaining,omitempty"`
}

// Formation describes how many players of each role a lineup fields
type Formation struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Guards   int    `json:"guards"`
	Forwards int    `json:"forwards"`
	Center   int    `json:"center"`
}

// Size returns the number of starters in the formation
func (f Formation) Size() int {
	return f.Guards + f.Forwards + f.Center
}

// Formation keys accepted by the API
const (
	FormationStandard   = "standard"
	FormationSmallBall  = "small-ball"
	FormationTwinTowers = "twin-towers"
)

// Formations are the lineups the game supports
var Formations = map[string]Formation{
	FormationStandard:   {Key: FormationStandard, Name: "Standard", Guards: 2, Forwards: 2, Center: 1},
	FormationSmallBall:  {Key: FormationSmallBall, Name: "Small Ball", Guards: 3, Forwards: 2, Center: 0},
	FormationTwinTowers: {Key: FormationTwinTowers, Name: "Twin Towers", Guards: 2, Forwards: 1, Center: 2},
}

// LookupFormation returns the formation with the given key
func LookupFormation(key string) (Formation, error) {
	f, ok := Formations[key]
	if !ok {
		return Formation{}, fmt.Errorf("%w: %q", ErrUnknownFormation, key)
	}
	return f, nil
}

// SortedFormations returns all formations ordered by key
func SortedFormations() []Formation {
	out := make([]Formation, 0, len(Formations))
	for _, f := range Formations {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
