package client

import (
	"context"
	"net/url"

	"github.com/mcoot/hoopsclient/internal/model"
)

// FetchPlayers returns the players available on the market
func (c *Client) FetchPlayers(ctx context.Context) ([]model.Player, error) {
	return Get[[]model.Player](ctx, c, "/players/")
}

// FetchPlayerByID returns a single player
func (c *Client) FetchPlayerByID(ctx context.Context, playerID string) (model.Player, error) {
	return Get[model.Player](ctx, c, "/players/"+url.PathEscape(playerID))
}

// FetchPlayersByPosition returns the players playing position
func (c *Client) FetchPlayersByPosition(ctx context.Context, position string) ([]model.Player, error) {
	q := url.Values{"position": {position}}
	return Get[[]model.Player](ctx, c, "/players?"+q.Encode())
}
