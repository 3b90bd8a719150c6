package domain

import "path/filepath"

// DefaultBaseURL is the API root the client talks to unless configured
// otherwise.
const DefaultBaseURL = "https://projects.blender.org/api/v1"

// Configuration file locations. The repo file lives at the repository
// root; the global file under the user's config directory.
const (
	ConfigFileName     = "config.toml"
	RepoConfigFileName = ".triage.toml"
)

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "triage")
}

// Config represents the application configuration.
type Config struct {
	Gitea    GiteaConfig    `toml:"gitea"`
	Defaults DefaultsConfig `toml:"defaults"`
	Log      LogConfig      `toml:"log"`
}

// GiteaConfig holds settings for the forge endpoint from [gitea].
type GiteaConfig struct {
	BaseURL     string `toml:"base_url,omitempty"`     // API root (default: projects.blender.org)
	AccessToken string `toml:"access_token,omitempty"` // Token generated by the Gitea API
}

// DefaultsConfig holds fallback values from [defaults].
type DefaultsConfig struct {
	Username string `toml:"username,omitempty"` // Used when no username is given and git config has none
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, or error
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Gitea: GiteaConfig{
			BaseURL: DefaultBaseURL,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
