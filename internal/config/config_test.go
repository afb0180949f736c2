package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.General.DataDir = "/srv/food"
	cfg.Report.Format = "yaml"
	cfg.Report.Detailed = true
	cfg.TUI.HistoryDays = 30

	if err := SaveFile(path, cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("perm = %o, want 600", perm)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != cfg {
		t.Fatalf("got = %+v, want %+v", got, cfg)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[report]\ndetailed = true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.Report.Detailed || cfg.Report.Format != "text" || cfg.General.DefaultPercent != 100 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[general\n"},
		{"format", "[report]\nformat = \"xml\"\n"},
		{"percent", "[general]\ndefault_percent = -5\n"},
		{"history", "[tui]\nhistory_days = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Fatal("LoadFile succeeded, want error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDataDir, "/tmp/food")
	t.Setenv(EnvTheme, "catppuccin-mocha")

	cfg := DefaultConfig()
	cfg.General.DataDir = "/from/file"
	ApplyEnv(&cfg)

	if cfg.General.DataDir != "/tmp/food" {
		t.Errorf("DataDir = %q", cfg.General.DataDir)
	}
	if cfg.Appearance.Theme != "catppuccin-mocha" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := ConfigPath(); got != filepath.Join("/xdg", "foodinme", "config.toml") {
		t.Fatalf("ConfigPath = %q", got)
	}
}
