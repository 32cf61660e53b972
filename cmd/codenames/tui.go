package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/codenames/internal/palette"
	"github.com/vovakirdan/codenames/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Deal a board in the full-screen view",
	Long: `Deal a board and mark words with the keyboard.

Controls:
  Arrows/hjkl  - Move the cursor
  r/b/y/w      - Red, blue, yellow, white
  ?            - More help
  Q/Ctrl+C     - Quit

Examples:
  codenames tui
  codenames tui --list en`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func runTUI(_ *cobra.Command, _ []string) {
	cfg, logger := setup()

	g, err := newGame(cfg, logger)
	if err != nil {
		logger.Fatal("cannot deal board", "error", err)
	}

	colors := palette.Detect(os.Stdout, cfg.ColorMode())
	if err := tui.Run(g, colors, logger); err != nil {
		logger.Fatal("cannot run board", "error", err)
	}
}
