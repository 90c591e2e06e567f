package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mcoot/hoopsclient/internal/model"
)

// Leaderboard paging defaults
const (
	DefaultLeaderboardPage     = 1
	DefaultLeaderboardPageSize = 50
	DefaultTopPlayersLimit     = 10
)

// FetchLeaderboard returns a page of the global leaderboard.
// Non-positive page or pageSize fall back to the defaults.
func (c *Client) FetchLeaderboard(ctx context.Context, page, pageSize int) (model.LeaderboardResponse, error) {
	if page <= 0 {
		page = DefaultLeaderboardPage
	}
	if pageSize <= 0 {
		pageSize = DefaultLeaderboardPageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	return Get[model.LeaderboardResponse](ctx, c, "/leaderboard?"+q.Encode())
}

// FetchUserPosition returns the authenticated user's leaderboard entry
func (c *Client) FetchUserPosition(ctx context.Context) (model.LeaderboardEntry, error) {
	return Get[model.LeaderboardEntry](ctx, c, "/leaderboard/me")
}

// FetchTopPlayers returns the top limit users
func (c *Client) FetchTopPlayers(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultTopPlayersLimit
	}
	return Get[[]model.LeaderboardEntry](ctx, c, "/leaderboard/top?limit="+strconv.Itoa(limit))
}
