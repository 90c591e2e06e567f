package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/hoopsclient/internal/client"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Get[HealthResult](cmd.Context(), app.API, "/health")
			if err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
