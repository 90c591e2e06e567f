package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/hoopsclient/internal/factory"
	"github.com/mcoot/hoopsclient/internal/navigation"
)

// openApp wires the client application for one command invocation
func openApp(ctx context.Context, cmd *cobra.Command) (*factory.App, error) {
	logger := cfg.Logger(cmd.ErrOrStderr())

	fc := cfg.FactoryConfig(logger)
	fc.Navigator = navigation.NewLogger(logger)

	a, err := factory.New(ctx, fc)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return a, nil
}

// requireLogin fails early for commands that need a session
func requireLogin() error {
	if !app.Session.CheckAuth() {
		return fmt.Errorf("not logged in: run 'hoops login' first")
	}
	return nil
}
