package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Rorical/RoriRecipe/internal/models"
)

// DefaultBaseURL is used when neither the environment nor the active profile
// names a recipe service
const DefaultBaseURL = "http://localhost:8000"

type Profile struct {
	BaseURL     string `json:"base_url,omitempty"`
	DefaultDiet string `json:"default_diet,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
	env            Env
	urlOverride    string
}

// Env holds settings that may come from the process environment or a .env
// file in the working directory
type Env struct {
	APIURL  string `envconfig:"RECIPE_API_URL"`
	LogFile string `envconfig:"RORIRECIPE_LOG_FILE"`
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	config.env = env

	return config, nil
}

// LoadEnv reads .env (if present) and then the process environment
func LoadEnv() (Env, error) {
	// A missing .env is the normal case
	_ = godotenv.Load()

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return env, nil
}

// OverrideBaseURL pins the service address for this process, e.g. from --url
func (c *Config) OverrideBaseURL(u string) {
	c.urlOverride = u
}

// GetBaseURL resolves the recipe service address: an explicit override,
// RECIPE_API_URL, the active profile, then DefaultBaseURL
func (c *Config) GetBaseURL() string {
	if c.urlOverride != "" {
		return strings.TrimRight(c.urlOverride, "/")
	}
	if c.env.APIURL != "" {
		return strings.TrimRight(c.env.APIURL, "/")
	}
	if c.currentProfile != nil && c.currentProfile.BaseURL != "" {
		return strings.TrimRight(c.currentProfile.BaseURL, "/")
	}
	return DefaultBaseURL
}

func (c *Config) GetDefaultDiet() models.Diet {
	if c.currentProfile == nil {
		return models.NoRestriction
	}
	d, err := models.ParseDiet(c.currentProfile.DefaultDiet)
	if err != nil {
		return models.NoRestriction
	}
	return d
}

// GetLogPath returns RORIRECIPE_LOG_FILE or rorirecipe.log next to the config
func (c *Config) GetLogPath() string {
	if c.env.LogFile != "" {
		return c.env.LogFile
	}
	configPath, err := getConfigPath()
	if err != nil {
		return filepath.Join(os.TempDir(), "rorirecipe.log")
	}
	return filepath.Join(filepath.Dir(configPath), "rorirecipe.log")
}

// ValidateBaseURL accepts absolute http and https URLs
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must start with http:// or https://, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL %q has no host", raw)
	}
	return nil
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORIRECIPE_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORIRECIPE_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".rorirecipe", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": {
				BaseURL:     DefaultBaseURL,
				DefaultDiet: models.NoRestriction.String(),
			},
		},
		ActiveProfile: "default",
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first profile in name order so the choice is stable
		names := c.ProfileNames()
		c.ActiveProfile = names[0]
		profile = c.Profiles[names[0]]
	}

	c.currentProfile = &profile
	return nil
}

// ProfileNames returns the profile names sorted alphabetically
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Use makes name the active profile; it does not save
func (c *Config) Use(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	return c.setCurrentProfile()
}
