// Package config provides YAML-based configuration loading for codenames.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/codenames/internal/palette"
)

// Config holds everything the CLI needs to set up a board.
type Config struct {
	Words    string `yaml:"words"`     // Plain text word list path
	List     string `yaml:"list"`      // Word bank list name; overrides Words when set
	DB       string `yaml:"db"`        // Word bank path
	Color    string `yaml:"color"`     // "auto", "always" or "never"
	Seed     int64  `yaml:"seed"`      // 0 = time based
	LogLevel string `yaml:"log_level"` // charmbracelet/log level name

	// Source is the file the config was read from, or "embedded".
	Source string `yaml:"-"`
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if _, err := palette.ParseMode(c.Color); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.List == "" && c.Words == "" {
		return fmt.Errorf("config: neither words nor list is set")
	}
	return nil
}

// ColorMode returns the parsed colour mode, auto when invalid.
func (c Config) ColorMode() palette.Mode {
	m, _ := palette.ParseMode(c.Color)
	return m
}

// Level returns the parsed log level, warn when invalid.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return l
}
