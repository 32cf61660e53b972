// codenames deals a 5x5 board of random words and lets you mark each word
// with a team colour from the terminal.
//
// Usage:
//
//	codenames                     - Deal a board and start the command loop
//	codenames tui                 - Deal a board in the full-screen view
//	codenames words import <file> - Store a word list in the word bank
//	codenames words list          - Show stored word lists
//	codenames words rm <name>     - Delete a stored word list
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.codenames/config.yaml, ./configs/codenames.yaml)
//	--words <path>      - Word list file (default: words.it.txt)
//	--list <name>       - Use a word bank list instead of a file
//	--db <path>         - Word bank path (default: ~/.codenames/words.db)
//	--color <mode>      - auto, always or never
//	--seed <value>      - RNG seed for a reproducible board
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/codenames/internal/console"
	"github.com/vovakirdan/codenames/internal/palette"
)

var (
	// Global flags
	flagConfig   string
	flagWords    string
	flagList     string
	flagDBPath   string
	flagColor    string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codenames",
	Short: "Codenames board - deal words and mark them by team",
	Long: `Deals a 5x5 board of words picked at random from a word list and
lets you mark each word with a team colour.

Commands at the prompt:
  row,col     - Pick a cell (1-based, e.g. 2,4)
  r/b/y/w     - Colour for the picked cell: red, blue, yellow, white
  quit, exit  - Leave

Examples:
  codenames
  codenames --words words.en.txt
  codenames --list it --seed 42
  codenames --color never > board.txt`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to word list file")
	rootCmd.PersistentFlags().StringVar(&flagList, "list", "", "Word bank list to deal from")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to word bank database")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Colour output: auto, always, never")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(wordsCmd)
}

func runBoard(_ *cobra.Command, _ []string) {
	cfg, logger := setup()

	g, err := newGame(cfg, logger)
	if err != nil {
		logger.Fatal("cannot deal board", "error", err)
	}

	colors := palette.Detect(os.Stdout, cfg.ColorMode())
	logger.Debug("output", "color", colors.SupportsColor())

	loop := console.New(g, os.Stdin, os.Stdout,
		console.WithColorizer(colors),
		console.WithLogger(logger),
	)
	if err := loop.Run(); err != nil {
		logger.Fatal("command loop failed", "error", err)
	}
}
