package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sdahlbac/colormixer/colormix"
)

// ErrConfigParse wraps TOML decoding failures.
var ErrConfigParse = errors.New("invalid config file")

// Config is the on-disk configuration. It only seeds the initial view; the
// application never writes it back.
type Config struct {
	Language string `toml:"language"`
	First    string `toml:"first"`
	Second   string `toml:"second"`
}

// Settings is Config resolved against the palette.
type Settings struct {
	Language colormix.Language
	First    colormix.Color
	Second   colormix.Color
}

// DefaultConfig matches the original view: Red plus Blue, English labels.
func DefaultConfig() *Config {
	return &Config{
		Language: "en",
		First:    "Red",
		Second:   "Blue",
	}
}

// ConfigPath returns $XDG_CONFIG_HOME/colormixer/config.toml.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "colormixer", "config.toml"), nil
}

// LoadConfig reads path, or ConfigPath() when path is empty. A missing file
// yields DefaultConfig. Fields left empty in the file keep their defaults.
// COLORMIXER_LANG overrides the file's language.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return nil, err
		}
	}

	config := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		var fileConfig Config
		if _, err := toml.DecodeFile(path, &fileConfig); err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrConfigParse, path, err)
		}
		config.merge(fileConfig)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	if lang, ok := os.LookupEnv(EnvLanguage); ok && lang != "" {
		config.Language = lang
	}

	return config, nil
}

func (c *Config) merge(other Config) {
	if other.Language != "" {
		c.Language = other.Language
	}
	if other.First != "" {
		c.First = other.First
	}
	if other.Second != "" {
		c.Second = other.Second
	}
}

// Validate reports the first setting that does not resolve.
func (c *Config) Validate() error {
	_, err := c.Settings()
	return err
}

// Settings resolves the language code and color names.
func (c *Config) Settings() (Settings, error) {
	lang, err := colormix.ParseLanguage(c.Language)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid language: %w", err)
	}

	first, ok := colormix.ByName(c.First)
	if !ok {
		return Settings{}, fmt.Errorf("invalid first: %w: %q", ErrUnknownColor, c.First)
	}
	second, ok := colormix.ByName(c.Second)
	if !ok {
		return Settings{}, fmt.Errorf("invalid second: %w: %q", ErrUnknownColor, c.Second)
	}

	return Settings{
		Language: lang,
		First:    first.Color,
		Second:   second.Color,
	}, nil
}
