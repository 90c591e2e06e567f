package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/hoopsclient/internal/model"
)

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func newLoginCmd() *cobra.Command {
	var email, password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			if err := app.Session.Login(cmd.Context(), email, password, remember); err != nil {
				return err
			}

			newOutput(cmd).Print(app.Session.Get())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	cmd.Flags().BoolVar(&remember, "remember", false, "Ask for a long-lived token")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd() *cobra.Command {
	var req model.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Username == "" || req.Email == "" || req.Password == "" {
				return fmt.Errorf("--username, --email, and --password are required")
			}
			if req.ConfirmPassword == "" {
				req.ConfirmPassword = req.Password
			}

			if err := app.Session.Register(cmd.Context(), req); err != nil {
				return err
			}

			out := newOutput(cmd)
			state := app.Session.Get()
			if !state.IsAuthenticated {
				out.PrintMessage("Registered. Run 'hoops login' to sign in.")
				return nil
			}
			out.Print(state)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&req.ConfirmPassword, "confirm-password", "", "Password confirmation (default: --password)")
	cmd.Flags().StringVar(&req.TeamName, "team-name", "", "Fantasy team name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			newOutput(cmd).PrintMessage("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Session.Get()

			result := WhoAmI{
				Status: string(state.Status()),
				User:   state.User,
			}
			if exp, ok := state.TokenExpiry(); ok {
				result.TokenExpiresAt = &exp
				result.TokenExpired = state.Expired(app.Clock.Now())
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Local profile commands",
	}

	cmd.AddCommand(newProfileSetCmd())

	return cmd
}

func newProfileSetCmd() *cobra.Command {
	var username, email, teamName string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the cached user details",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}

			var patch model.UserPatch
			if cmd.Flags().Changed("username") {
				patch.Username = &username
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if cmd.Flags().Changed("team-name") {
				patch.TeamName = &teamName
			}
			if patch == (model.UserPatch{}) {
				return fmt.Errorf("nothing to update: pass --username, --email or --team-name")
			}

			if err := app.Session.UpdateUser(cmd.Context(), patch); err != nil {
				return err
			}

			newOutput(cmd).Print(*app.Session.Get().User)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&teamName, "team-name", "", "Team name")

	return cmd
}
