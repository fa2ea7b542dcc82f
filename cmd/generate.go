package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriRecipe/internal/core"
	"github.com/Rorical/RoriRecipe/internal/models"
	"github.com/Rorical/RoriRecipe/internal/recipe"
)

var dietFlag string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Request one recipe and print it",
	Long: `Request a single recipe without starting the interactive screen.
Without --diet the profile's default is used, or you are asked when running in a terminal.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		diet := cfg.GetDefaultDiet()
		switch {
		case cmd.Flags().Changed("diet"):
			if diet, err = models.ParseDiet(dietFlag); err != nil {
				return err
			}
		case isatty.IsTerminal(os.Stdin.Fd()):
			if diet, err = promptDiet("Select your dietary preference", diet); err != nil {
				return fmt.Errorf("selection failed: %w", err)
			}
		}

		service := core.NewRecipeService(recipe.NewClient(cfg.GetBaseURL(), nil), diet, nil)

		s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = " Generating Recipe..."
		s.Start()
		service.Submit(cmd.Context())
		service.Wait()
		s.Stop()

		snap := service.Snapshot()
		out := cmd.OutOrStdout()
		switch snap.State {
		case models.Succeeded:
			fmt.Fprintln(out, snap.Result.Title())
			fmt.Fprintln(out)
			fmt.Fprintln(out, snap.Result.Recipe)
			return nil
		case models.Failed:
			return errors.New(snap.Error)
		}
		return fmt.Errorf("request ended in unexpected state %s", snap.State)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&dietFlag, "diet", "d", "", "none, vegetarian or vegan")
	rootCmd.AddCommand(generateCmd)
}
