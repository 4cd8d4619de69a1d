package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sdahlbac/colormixer/colormix"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Language != "en" || cfg.First != "Red" || cfg.Second != "Blue" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv(EnvLanguage, "")
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv(EnvLanguage, "")
	path := writeConfig(t, `
language = "ru"
first = "Yellow"
second = "Фиолетовый"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	settings, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Expected valid settings, got %v", err)
	}
	if settings.Language != colormix.Russian {
		t.Errorf("Expected Russian, got %v", settings.Language)
	}
	if settings.First != colormix.Yellow || settings.Second != colormix.Purple {
		t.Errorf("Unexpected colors: %+v", settings)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvLanguage, "")
	path := writeConfig(t, `second = "green"`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Language != "en" || cfg.First != "Red" || cfg.Second != "green" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv(EnvLanguage, "ru")
	path := writeConfig(t, `language = "en"`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Language != "ru" {
		t.Errorf("Expected env to override language, got %q", cfg.Language)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	t.Setenv(EnvLanguage, "")
	path := writeConfig(t, `language = `)

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("Expected ErrConfigParse, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid", Config{Language: "ru", First: "Green", Second: "Blue"}, nil},
		{"empty language means English", Config{Language: "", First: "Green", Second: "Blue"}, nil},
		{"bad language", Config{Language: "de", First: "Red", Second: "Blue"}, colormix.ErrUnknownLanguage},
		{"bad first", Config{Language: "en", First: "Orange", Second: "Blue"}, ErrUnknownColor},
		{"bad second", Config{Language: "en", First: "Red", Second: ""}, ErrUnknownColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(path) != "config.toml" || filepath.Base(filepath.Dir(path)) != "colormixer" {
		t.Errorf("Unexpected config path %s", path)
	}
}
