package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/hoopsclient/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	loaded, loadErr := LoadConfig()
	if loadErr != nil {
		loaded = &Config{Output: OutputText}
	}
	cfg = loaded

	rootCmd := &cobra.Command{
		Use:   "hoops",
		Short: "CLI client for the fantasy basketball API",
		Long: `hoops is a CLI client for the fantasy basketball JSON API.

It keeps you logged in between runs, and lets you browse the player market,
manage your team, and follow the leaderboard and your dashboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			err := app.Close()
			app = nil
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "API base URL (env: HOOPS_SERVER, PUBLIC_API_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Session storage: file, memory, redis, sqlite (env: HOOPS_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "Session directory or database path (env: HOOPS_STORAGE_PATH)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for redis storage (env: HOOPS_REDIS_URL)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout (env: HOOPS_TIMEOUT)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newTeamCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if app != nil {
			_ = app.Close()
			app = nil
		}
		NewOutput(cfg.Output, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		os.Exit(1)
	}
}
