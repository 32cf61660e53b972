package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/codenames/internal/config"
	"github.com/vovakirdan/codenames/internal/game"
	"github.com/vovakirdan/codenames/internal/storage"
	"github.com/vovakirdan/codenames/internal/wordlist"
)

// setup loads the config, applies flag overrides and builds the logger.
// Any failure here is fatal.
func setup() (config.Config, *log.Logger) {
	logger := newLogger(log.WarnLevel)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	applyFlags(&cfg)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "error", err)
	}
	logger.SetLevel(cfg.Level())
	logger.Debug("config loaded", "source", cfg.Source)

	return cfg, logger
}

// applyFlags copies explicitly set global flags over cfg.
func applyFlags(cfg *config.Config) {
	if flagWords != "" {
		cfg.Words = flagWords
		cfg.List = ""
	}
	if flagList != "" {
		cfg.List = flagList
	}
	if flagDBPath != "" {
		cfg.DB = flagDBPath
	}
	if flagColor != "" {
		cfg.Color = flagColor
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
}

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "codenames",
		Level:           level,
	})
}

// loadWords reads the configured word source: a word bank list when one
// is named, the word file otherwise.
func loadWords(cfg config.Config, logger *log.Logger) ([]string, error) {
	if cfg.List != "" {
		store, err := storage.Open(cfg.DB)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		logger.Debug("loading words", "list", cfg.List, "db", cfg.DB)
		return store.Words(cfg.List)
	}

	logger.Debug("loading words", "file", cfg.Words)
	return wordlist.Load(cfg.Words)
}

// newGame loads the words and deals a board.
func newGame(cfg config.Config, logger *log.Logger) (*game.Game, error) {
	words, err := loadWords(cfg, logger)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.New(words, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	logger.Debug("board dealt", "board", g.ID(), "seed", seed, "pool", len(words))
	return g, nil
}
