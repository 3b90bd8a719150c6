// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gitea-tools/triage/internal/domain"
)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Root of the enclosing working copy ("" when outside one)
	globalConfDir string // Global config directory (e.g. ~/.config/triage)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global
// config directory. This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration. Repository config takes
// precedence over global config, which takes precedence over defaults.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var repo *domain.Config
	if l.repoRoot != "" {
		repo, err = l.loadFile(filepath.Join(l.repoRoot, domain.RepoConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile reads one TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	merged := *base
	if override.Gitea.BaseURL != "" {
		merged.Gitea.BaseURL = override.Gitea.BaseURL
	}
	if override.Gitea.AccessToken != "" {
		merged.Gitea.AccessToken = override.Gitea.AccessToken
	}
	if override.Defaults.Username != "" {
		merged.Defaults.Username = override.Defaults.Username
	}
	if override.Log.Level != "" {
		merged.Log.Level = override.Log.Level
	}
	return &merged
}
