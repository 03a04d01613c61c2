// Package config loads the labpeek TOML config file
// (~/.config/labpeek/config.toml by default).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	GitLab GitLabConfig `toml:"gitlab"`
	App    AppConfig    `toml:"app"`
	Editor EditorConfig `toml:"editor"`
}

type GitLabConfig struct {
	Token            string `toml:"token"`
	InstanceURL      string `toml:"instance_url"`
	DefaultProjectID int64  `toml:"default_project_id"`
}

type AppConfig struct {
	RefreshIntervalSeconds     int  `toml:"refresh_interval"`
	AutoRefreshIntervalMinutes int  `toml:"auto_refresh_interval_minutes"`
	FocusCurrentBranch         bool `toml:"focus_current_branch"`
	MaxTrackedMRs              int  `toml:"max_tracked_mrs"`
}

type EditorConfig struct {
	CustomEditor string `toml:"custom_editor"`
}

const (
	defaultInstanceURL     = "https://gitlab.com"
	defaultRefreshSeconds  = 30
	defaultAutoRefreshMins = 1
	defaultMaxTrackedMRs   = 5
)

// DefaultPath returns the standard config location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "labpeek", "config.toml"), nil
}

// Load reads and validates the config at path. A missing file is an
// error: the token has no usable default. The token may alternatively
// come from $GITLAB_TOKEN, in which case the file may omit it.
func Load(path string) (Config, error) {
	cfg := Config{
		GitLab: GitLabConfig{InstanceURL: defaultInstanceURL},
		App: AppConfig{
			RefreshIntervalSeconds:     defaultRefreshSeconds,
			AutoRefreshIntervalMinutes: defaultAutoRefreshMins,
			FocusCurrentBranch:         true,
			MaxTrackedMRs:              defaultMaxTrackedMRs,
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && os.Getenv("GITLAB_TOKEN") != "" {
			cfg.GitLab.Token = os.Getenv("GITLAB_TOKEN")
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.GitLab.Token = strings.TrimSpace(cfg.GitLab.Token)
	if cfg.GitLab.Token == "" {
		cfg.GitLab.Token = os.Getenv("GITLAB_TOKEN")
	}
	cfg.GitLab.InstanceURL = strings.TrimRight(strings.TrimSpace(cfg.GitLab.InstanceURL), "/")
	if cfg.GitLab.InstanceURL == "" {
		cfg.GitLab.InstanceURL = defaultInstanceURL
	}
	if cfg.App.RefreshIntervalSeconds <= 0 {
		cfg.App.RefreshIntervalSeconds = defaultRefreshSeconds
	}
	if cfg.App.AutoRefreshIntervalMinutes <= 0 {
		cfg.App.AutoRefreshIntervalMinutes = defaultAutoRefreshMins
	}
	if cfg.App.MaxTrackedMRs <= 0 {
		cfg.App.MaxTrackedMRs = defaultMaxTrackedMRs
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.GitLab.Token == "" {
		return fmt.Errorf("gitlab token is required (set [gitlab] token or $GITLAB_TOKEN)")
	}
	return nil
}

func (c Config) AutoRefreshInterval() time.Duration {
	return time.Duration(c.App.AutoRefreshIntervalMinutes) * time.Minute
}

// ResolveEditor picks the editor for log handoff: the configured one,
// then $EDITOR, then $VISUAL, then vim.
func (c Config) ResolveEditor() string {
	if c.Editor.CustomEditor != "" {
		return c.Editor.CustomEditor
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if e := os.Getenv("VISUAL"); e != "" {
		return e
	}
	return "vim"
}
