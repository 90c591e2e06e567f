package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hoopsclient/internal/model"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player market commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersGetCmd())

	return cmd
}

func newPlayersListCmd() *cobra.Command {
	var position string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players on the market",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				players []model.Player
				err     error
			)
			if position != "" {
				players, err = app.API.FetchPlayersByPosition(cmd.Context(), strings.ToUpper(position))
			} else {
				players, err = app.API.FetchPlayers(cmd.Context())
			}
			if err != nil {
				return err
			}

			newOutput(cmd).Print(players)
			return nil
		},
	}

	cmd.Flags().StringVar(&position, "position", "", "Filter by position (PG, SG, SF, PF, C)")

	return cmd
}

func newPlayersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.API.FetchPlayerByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			newOutput(cmd).Print(player)
			return nil
		},
	}
}
