package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hoopsclient/internal/model"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team management commands",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return requireLogin()
		},
	}

	cmd.AddCommand(newTeamShowCmd())
	cmd.AddCommand(newTeamAddCmd())
	cmd.AddCommand(newTeamRemoveCmd())
	cmd.AddCommand(newTeamFormationCmd())
	cmd.AddCommand(newTeamFormationsCmd())
	cmd.AddCommand(newTeamNameCmd())
	cmd.AddCommand(newTeamValidateCmd())

	return cmd
}

func newTeamShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your team",
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := app.API.FetchUserTeam(cmd.Context())
			if err != nil {
				return err
			}

			newOutput(cmd).Print(team)
			return nil
		},
	}
}

func newTeamAddCmd() *cobra.Command {
	var position string

	cmd := &cobra.Command{
		Use:   "add <player-id>",
		Short: "Add a player to your team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := app.API.AddPlayerToTeam(cmd.Context(), args[0], strings.ToUpper(position))
			if err != nil {
				return err
			}

			newOutput(cmd).Print(team)
			return nil
		},
	}

	cmd.Flags().StringVar(&position, "position", "", "Slot to fill (default: the player's position)")

	return cmd
}

func newTeamRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from your team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := app.API.RemovePlayerFromTeam(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			newOutput(cmd).Print(team)
			return nil
		},
	}
}

func newTeamFormationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formation <key>",
		Short: "Change your formation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := model.LookupFormation(args[0]); err != nil {
				return err
			}

			team, err := app.API.UpdateTeamFormation(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			newOutput(cmd).Print(team)
			return nil
		},
	}
}

func newTeamFormationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formations",
		Short: "List the available formations",
		RunE: func(cmd *cobra.Command, args []string) error {
			newOutput(cmd).Print(model.SortedFormations())
			return nil
		},
	}
}

func newTeamNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <team-name>",
		Short: "Rename your team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := app.API.UpdateTeamName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			// Keep the cached user in step with the server
			if err := app.Session.UpdateUser(cmd.Context(), model.UserPatch{TeamName: &team.TeamName}); err != nil {
				return err
			}

			newOutput(cmd).Print(team)
			return nil
		},
	}
}

func newTeamValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <player-id>",
		Short: "Check whether a player can be added",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.API.ValidatePlayerAddition(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
