package model

// Activity types reported in the dashboard feed
const (
	ActivityPlayerAdded   = "player_added"
	ActivityPlayerRemoved = "player_removed"
	ActivityPointsEarned  = "points_earned"
	ActivityRankChange    = "rank_change"
)

// UserStats are the headline numbers on the dashboard
type UserStats struct {
	TotalPoints      int     `json:"totalPoints"`
	Rank             int     `json:"rank"`
	WeeklyPoints     int     `json:"weeklyPoints"`
	WeeklyRankChange int     `json:"weeklyRankChange"`
	TotalPlayers     int     `json:"totalPlayers"`
	BudgetUsed       float64 `json:"budgetUsed"`
	BudgetRemaining  float64 `json:"budgetRemaining"`
}

// RecentActivity is one entry of the activity feed
type RecentActivity struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Points    *int   `json:"points,omitempty"`
}

// League is a league the user belongs to
type League struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Members  int    `json:"members"`
	YourRank int    `json:"yourRank"`
}

// TopPerformer is a highlighted player on the dashboard
type TopPerformer struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Points     int    `json:"points"`
}

// DashboardData aggregates everything shown on the dashboard
type DashboardData struct {
	Stats          UserStats        `json:"stats"`
	RecentActivity []RecentActivity `json:"recentActivity"`
	Leagues        []League         `json:"leagues"`
	TopPerformers  []TopPerformer   `json:"topPerformers,omitempty"`
}
