// Package config loads and saves the foodinme TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDataDir = "FOODINME_DATA_DIR"
	EnvTheme   = "FOODINME_THEME"
)

// Config holds all foodinme configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Report     ReportConfig     `toml:"report"`
	Appearance AppearanceConfig `toml:"appearance"`
	TUI        TUIConfig        `toml:"tui"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir        string  `toml:"data_dir"`
	DefaultPercent float64 `toml:"default_percent"`
}

// ReportConfig holds defaults for the report command.
type ReportConfig struct {
	Detailed bool   `toml:"detailed"`
	Format   string `toml:"format"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// TUIConfig holds dashboard settings.
type TUIConfig struct {
	HistoryDays int `toml:"history_days"`
}

// ReportFormats lists the accepted report.format values.
var ReportFormats = []string{"text", "json", "yaml", "markdown"}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultPercent: 100,
		},
		Report: ReportConfig{
			Format: "text",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		TUI: TUIConfig{
			HistoryDays: 14,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "foodinme")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "foodinme")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies environment overrides. A .env file in the working directory is
// loaded first; variables already set in the environment win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := LoadFile(ConfigPath())
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads the config at path over the defaults without consulting
// the environment.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyEnv overlays FOODINME_* variables onto cfg.
func ApplyEnv(cfg *Config) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.General.DataDir = dir
	}
	if theme := os.Getenv(EnvTheme); theme != "" {
		cfg.Appearance.Theme = theme
	}
}

// Validate rejects values the commands cannot act on.
func (c Config) Validate() error {
	if c.General.DefaultPercent < 0 {
		return fmt.Errorf("general.default_percent must not be negative, got %v", c.General.DefaultPercent)
	}
	if c.TUI.HistoryDays < 1 {
		return fmt.Errorf("tui.history_days must be at least 1, got %d", c.TUI.HistoryDays)
	}
	if !ValidFormat(c.Report.Format) {
		return fmt.Errorf("report.format must be one of %s, got %q",
			strings.Join(ReportFormats, ", "), c.Report.Format)
	}
	return nil
}

// ValidFormat reports whether f names a known report format.
func ValidFormat(f string) bool {
	for _, known := range ReportFormats {
		if f == known {
			return true
		}
	}
	return false
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(ConfigPath(), cfg)
}

// SaveFile writes cfg to path with owner-only permissions.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
