package client

import (
	"context"
	"strconv"

	"github.com/mcoot/hoopsclient/internal/model"
)

// DefaultActivityLimit is the number of activity entries fetched when none is given
const DefaultActivityLimit = 10

// FetchDashboard returns the aggregated dashboard
func (c *Client) FetchDashboard(ctx context.Context) (model.DashboardData, error) {
	return Get[model.DashboardData](ctx, c, "/dashboard")
}

// FetchUserStats returns the dashboard headline numbers
func (c *Client) FetchUserStats(ctx context.Context) (model.UserStats, error) {
	return Get[model.UserStats](ctx, c, "/dashboard/stats")
}

// FetchRecentActivity returns the latest limit activity entries
func (c *Client) FetchRecentActivity(ctx context.Context, limit int) ([]model.RecentActivity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	return Get[[]model.RecentActivity](ctx, c, "/dashboard/activity?limit="+strconv.Itoa(limit))
}

// FetchUserLeagues returns the leagues the user belongs to
func (c *Client) FetchUserLeagues(ctx context.Context) ([]model.League, error) {
	return Get[[]model.League](ctx, c, "/dashboard/leagues")
}
