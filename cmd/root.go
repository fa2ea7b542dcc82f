package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriRecipe/internal/app"
	"github.com/Rorical/RoriRecipe/internal/config"
	"github.com/Rorical/RoriRecipe/internal/logger"
)

var baseURLFlag string

var rootCmd = &cobra.Command{
	Use:   "rorirecipe",
	Short: "Dinner recipes for your diet, in the terminal",
	Long:  `RoriRecipe asks a recipe service for a simple dinner recipe that fits your dietary preference.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		runApp(cfg)
	},
}

func Execute() {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the profile file and environment, applies --url and
// points the logger at the configured log file
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if baseURLFlag != "" {
		if err := config.ValidateBaseURL(baseURLFlag); err != nil {
			return nil, err
		}
		cfg.OverrideBaseURL(baseURLFlag)
	}
	if err := logger.Init(cfg.GetLogPath()); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return cfg, nil
}

func runApp(cfg *config.Config) {
	application := app.NewApplication(cfg)
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "url", "", "recipe service base URL (overrides RECIPE_API_URL and the profile)")
	rootCmd.AddCommand(profileCmd)
}
