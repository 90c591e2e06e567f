package model

// LeaderboardEntry is a single ranked user
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	TeamName string `json:"teamName"`
	Points   int    `json:"points"`
	Avatar   string `json:"avatar,omitempty"`
	Wins     *int   `json:"wins,omitempty"`
	Losses   *int   `json:"losses,omitempty"`
	Draws    *int   `json:"draws,omitempty"`
}

// LeaderboardResponse is a page of the global leaderboard
type LeaderboardResponse struct {
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
	UserPosition *LeaderboardEntry  `json:"userPosition,omitempty"`
	Total        int                `json:"total"`
	Page         int                `json:"page,omitempty"`
	PageSize     int                `json:"pageSize,omitempty"`
}
