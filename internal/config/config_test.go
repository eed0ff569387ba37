package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Color != ColorAuto || cfg.Draw.Amount != 1 || !cfg.Draw.Jokers || cfg.Draw.IncludeMinor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
color = "never"
log_level = "debug"

[draw]
amount = 3
nondestructive = true
include_minor = true

[roll]
crit = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Color != ColorNever || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected top-level values: %+v", cfg)
	}
	if cfg.Draw.Amount != 3 || !cfg.Draw.Nondestructive || !cfg.Draw.IncludeMinor {
		t.Fatalf("unexpected draw config: %+v", cfg.Draw)
	}
	if !cfg.Draw.Jokers {
		t.Fatal("jokers default lost when the key is absent")
	}
	if !cfg.Roll.Crit {
		t.Fatal("roll.crit not decoded")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[draw]\namount = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DICED_DRAW_AMOUNT", "5")
	t.Setenv("DICED_DRAW_JOKERS", "false")
	t.Setenv("DICED_COLOR", "always")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Draw.Amount != 5 || cfg.Draw.Jokers || cfg.Color != ColorAlways {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadConfigEnvError(t *testing.T) {
	t.Setenv("DICED_DRAW_AMOUNT", "lots")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []string{
		`color = "sometimes"`,
		`log_level = "loud"`,
		"[draw]\namount = 300",
		`color = [`,
	}
	for _, content := range tests {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diced", "config.toml")
	if _, err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("written config %+v differs from defaults", cfg)
	}
	if _, err := InitConfig(path); err == nil {
		t.Fatal("expected InitConfig to refuse overwriting")
	}
}

func TestGetConfigFilePathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := GetConfigFilePath(); got != filepath.Join("/tmp/xdg", "diced", "config.toml") {
		t.Fatalf("GetConfigFilePath = %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	if l, err := ParseLogLevel("DEBUG"); err != nil || l != slog.LevelDebug {
		t.Fatalf("ParseLogLevel = %v, %v", l, err)
	}
	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Fatal("expected error")
	}
}
