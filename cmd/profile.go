package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriRecipe/internal/config"
	"github.com/Rorical/RoriRecipe/internal/models"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage recipe service profiles",
	Long:  `Manage profiles pointing at different recipe service deployments.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Fprintln(out, "Available Profiles:")
		for _, name := range cfg.ProfileNames() {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Fprintf(out, "  %s%s\n", name, marker)
			fmt.Fprintf(out, "    Base URL: %s\n", orDefault(profile.BaseURL, config.DefaultBaseURL))
			fmt.Fprintf(out, "    Default Diet: %s\n", orDefault(profile.DefaultDiet, models.NoRestriction.String()))
			fmt.Fprintln(out)
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Profile: %s\n", profileName)
		fmt.Fprintf(out, "Base URL: %s\n", orDefault(profile.BaseURL, config.DefaultBaseURL))
		fmt.Fprintf(out, "Default Diet: %s\n", orDefault(profile.DefaultDiet, models.NoRestriction.String()))
		if profileName == cfg.ActiveProfile && cfg.GetBaseURL() != orDefault(profile.BaseURL, config.DefaultBaseURL) {
			fmt.Fprintf(out, "Effective Base URL: %s (from --url or RECIPE_API_URL)\n", cfg.GetBaseURL())
		}
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.Profile{BaseURL: config.DefaultBaseURL})
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		cfg.Profiles[profileName] = profile

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := profileArg(cfg, args, "Select profile to edit", false)
		if err != nil {
			log.Fatalf("%v", err)
		}

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		cfg.Profiles[profileName] = profile

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := profileArg(cfg, args, "Select profile to delete", false)
		if err != nil {
			log.Fatalf("%v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
			return
		}

		deleteProfile(cfg, profileName)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if len(args) == 0 && len(cfg.Profiles) < 2 {
			fmt.Fprintln(cmd.OutOrStdout(), "No other profiles available to switch to")
			return
		}

		profileName, err := profileArg(cfg, args, "Select profile to switch to", true)
		if err != nil {
			log.Fatalf("%v", err)
		}

		if err := cfg.Use(profileName); err != nil {
			log.Fatalf("%v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile '%s'\n", profileName)
	},
}

// profileArg returns args[0] or lets the user pick a profile
func profileArg(cfg *config.Config, args []string, label string, skipActive bool) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	var names []string
	for _, name := range cfg.ProfileNames() {
		if skipActive && name == cfg.ActiveProfile {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection failed: %w", err)
	}
	return name, nil
}

// promptProfile asks for each field, offering current values as defaults
func promptProfile(current config.Profile) (config.Profile, error) {
	baseURLPrompt := promptui.Prompt{
		Label:    "Base URL",
		Default:  current.BaseURL,
		Validate: config.ValidateBaseURL,
	}
	baseURL, err := baseURLPrompt.Run()
	if err != nil {
		return config.Profile{}, err
	}

	currentDiet, _ := models.ParseDiet(current.DefaultDiet)
	diet, err := promptDiet("Default diet", currentDiet)
	if err != nil {
		return config.Profile{}, err
	}

	return config.Profile{
		BaseURL:     baseURL,
		DefaultDiet: diet.String(),
	}, nil
}

// promptDiet shows the three diets with their descriptions
func promptDiet(label string, current models.Diet) (models.Diet, error) {
	prompt := promptui.Select{
		Label: label,
		Items: models.Diets,
		Templates: &promptui.SelectTemplates{
			Active:   `> {{ .Label | cyan }} - {{ .Description | faint }}`,
			Inactive: `  {{ .Label }} - {{ .Description | faint }}`,
			Selected: `{{ "✔" | green }} {{ .Label }}`,
		},
		CursorPos: int(current),
	}
	i, _, err := prompt.Run()
	if err != nil {
		return current, err
	}
	return models.Diets[i], nil
}

// deleteProfile removes name; when it was active another profile takes over,
// and removing the last profile recreates a default one
func deleteProfile(cfg *config.Config, name string) {
	delete(cfg.Profiles, name)

	if len(cfg.Profiles) == 0 {
		cfg.Profiles["default"] = config.Profile{
			BaseURL:     config.DefaultBaseURL,
			DefaultDiet: models.NoRestriction.String(),
		}
	}

	if cfg.ActiveProfile == name {
		_ = cfg.Use(cfg.ProfileNames()[0])
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func init() {
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
