package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/hoopsclient/internal/client"
)

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Dashboard commands",
	}

	cmd.AddCommand(newDashboardShowCmd())
	cmd.AddCommand(newDashboardStatsCmd())
	cmd.AddCommand(newDashboardActivityCmd())
	cmd.AddCommand(newDashboardLeaguesCmd())

	return cmd
}

func newDashboardShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the full dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.API.FetchDashboard(cmd.Context())
			if err != nil {
				return err
			}

			newOutput(cmd).Print(data)
			return nil
		},
	}
}

func newDashboardStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your headline numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.API.FetchUserStats(cmd.Context())
			if err != nil {
				return err
			}

			newOutput(cmd).Print(stats)
			return nil
		},
	}
}

func newDashboardActivityCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.API.FetchRecentActivity(cmd.Context(), limit)
			if err != nil {
				return err
			}

			newOutput(cmd).Print(items)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", client.DefaultActivityLimit, "Number of entries")

	return cmd
}

func newDashboardLeaguesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "Show your leagues",
		RunE: func(cmd *cobra.Command, args []string) error {
			leagues, err := app.API.FetchUserLeagues(cmd.Context())
			if err != nil {
				return err
			}

			newOutput(cmd).Print(leagues)
			return nil
		},
	}
}
