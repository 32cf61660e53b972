package config

import (
	_ "embed"
)

//go:embed defaults/codenames.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Words:    "words.it.txt",
		DB:       "~/.codenames/words.db",
		Color:    "auto",
		LogLevel: "warn",
		Source:   "embedded",
	}
}
