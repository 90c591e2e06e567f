package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/hoopsclient/internal/client"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Leaderboard commands",
	}

	cmd.AddCommand(newLeaderboardListCmd())
	cmd.AddCommand(newLeaderboardMeCmd())
	cmd.AddCommand(newLeaderboardTopCmd())

	return cmd
}

func newLeaderboardListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a page of the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.API.FetchLeaderboard(cmd.Context(), page, pageSize)
			if err != nil {
				return err
			}

			newOutput(cmd).Print(board)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", client.DefaultLeaderboardPage, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", client.DefaultLeaderboardPageSize, "Entries per page")

	return cmd
}

func newLeaderboardMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show your position",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.API.FetchUserPosition(cmd.Context())
			if err != nil {
				return err
			}

			newOutput(cmd).Print(entry)
			return nil
		},
	}
}

func newLeaderboardTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the top teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.API.FetchTopPlayers(cmd.Context(), limit)
			if err != nil {
				return err
			}

			newOutput(cmd).Print(entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", client.DefaultTopPlayersLimit, "Number of entries")

	return cmd
}
