package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriRecipe/internal/recipe"
)

var statusTimeout time.Duration

var statusCmd = &cobra.Command{
	Use:          "status",
	Short:        "Check that the recipe service is up",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), statusTimeout)
		defer cancel()

		baseURL := cfg.GetBaseURL()
		health, err := recipe.NewClient(baseURL, nil).Health(ctx)
		if err != nil {
			return fmt.Errorf("recipe service at %s is not healthy: %w", baseURL, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Recipe service at %s: %s\n", baseURL, health.Status)
		return nil
	},
}

func init() {
	statusCmd.Flags().DurationVar(&statusTimeout, "timeout", 10*time.Second, "how long to wait for the service")
	rootCmd.AddCommand(statusCmd)
}
