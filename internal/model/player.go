package model

// Position short codes used by the API
const (
	PositionPointGuard    = "PG"
	PositionShootingGuard = "SG"
	PositionSmallForward  = "SF"
	PositionPowerForward  = "PF"
	PositionCenter        = "C"
)

// Player is a player available on the market (matches API)
type Player struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Position      string      `json:"position"`
	PositionShort string      `json:"positionShort"`
	Team          string      `json:"team"`
	Price         string      `json:"price"`
	Points        int         `json:"points"`
	Photo         string      `json:"photo"`
	Stats         PlayerStats `json:"stats"`
}

// PlayerStats are per-game averages, formatted by the server
type PlayerStats struct {
	Points   string `json:"points"`
	Rebounds string `json:"rebounds"`
	Assists  string `json:"assists"`
	Steals   string `json:"steals"`
	Blocks   string `json:"blocks"`
}
