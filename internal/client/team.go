package client

import (
	"context"
	"net/url"

	"github.com/mcoot/hoopsclient/internal/model"
)

// FetchUserTeam returns the authenticated user's team
func (c *Client) FetchUserTeam(ctx context.Context) (model.UserTeam, error) {
	return Get[model.UserTeam](ctx, c, "/team")
}

// AddPlayerToTeam adds a player, optionally at a given position
func (c *Client) AddPlayerToTeam(ctx context.Context, playerID, position string) (model.UserTeam, error) {
	return Post[model.UserTeam](ctx, c, "/team/players", model.AddPlayerRequest{
		PlayerID: playerID,
		Position: position,
	})
}

// RemovePlayerFromTeam removes a player from the team
func (c *Client) RemovePlayerFromTeam(ctx context.Context, playerID string) (model.UserTeam, error) {
	return Delete[model.UserTeam](ctx, c, "/team/players/"+url.PathEscape(playerID))
}

// UpdateTeamFormation changes the team's formation
func (c *Client) UpdateTeamFormation(ctx context.Context, formation string) (model.UserTeam, error) {
	return Put[model.UserTeam](ctx, c, "/team/formation", model.UpdateFormationRequest{Formation: formation})
}

// UpdateTeamName renames the team
func (c *Client) UpdateTeamName(ctx context.Context, teamName string) (model.UserTeam, error) {
	return Put[model.UserTeam](ctx, c, "/team/name", model.UpdateTeamNameRequest{TeamName: teamName})
}

// ValidatePlayerAddition asks whether a player can be added to the team
func (c *Client) ValidatePlayerAddition(ctx context.Context, playerID string) (model.ValidationResult, error) {
	return Post[model.ValidationResult](ctx, c, "/team/validate", model.ValidatePlayerRequest{PlayerID: playerID})
}
