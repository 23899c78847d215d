package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"tripplanner/internal/catalog"
	"tripplanner/internal/domain"
)

// Environment variables that override the config file.
const (
	EnvSeed     = "TRIPPLANNER_SEED"
	EnvLogLevel = "TRIPPLANNER_LOG_LEVEL"
)

// CatalogConfig holds the categories and destinations the catalog is generated from.
type CatalogConfig struct {
	Categories   []domain.Category `yaml:"categories"`
	Destinations []string          `yaml:"destinations"`
}

// PlannerConfig tunes the recommendation pipeline.
type PlannerConfig struct {
	ActivitiesPerDay int `yaml:"activities_per_day"`
	MaxDays          int `yaml:"max_days"`
	// Seed fixes every random choice when non-zero.
	Seed uint64 `yaml:"seed"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives logs while the interactive UI owns the terminal. Empty discards them.
	File string `yaml:"file"`
}

// TUIConfig holds defaults for the interactive builder.
type TUIConfig struct {
	DefaultDays int `yaml:"default_days"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Planner PlannerConfig `yaml:"planner"`
	Log     LogConfig     `yaml:"log"`
	TUI     TUIConfig     `yaml:"tui"`
}

// Source returns the catalog source described by the config.
func (c *AppConfig) Source() catalog.Source {
	return catalog.Source{Categories: c.Catalog.Categories, Destinations: c.Catalog.Destinations}
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, applyEnv(cfg)
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	return &cfg, applyEnv(&cfg)
}

// LoadDefault tries ./config.yaml first, then ~/.config/tripplanner/config.yaml.
// If neither exists, it writes defaults to ~/.config/tripplanner/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, applyEnv(cfg)
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tripplanner", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if len(cfg.Catalog.Categories) == 0 || len(cfg.Catalog.Destinations) == 0 {
		def := catalog.Default()
		if len(cfg.Catalog.Categories) == 0 {
			cfg.Catalog.Categories = def.Categories
		}
		if len(cfg.Catalog.Destinations) == 0 {
			cfg.Catalog.Destinations = def.Destinations
		}
	}
	if cfg.Planner.ActivitiesPerDay <= 0 {
		cfg.Planner.ActivitiesPerDay = domain.DefaultActivitiesPerDay
	}
	if cfg.Planner.MaxDays <= 0 || cfg.Planner.MaxDays > domain.MaxDays {
		cfg.Planner.MaxDays = domain.MaxDays
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.TUI.DefaultDays <= 0 {
		cfg.TUI.DefaultDays = 3
	}
	if cfg.TUI.DefaultDays > cfg.Planner.MaxDays {
		cfg.TUI.DefaultDays = cfg.Planner.MaxDays
	}
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Planner.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return nil
}
