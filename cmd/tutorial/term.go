package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/indspenceable/gosu/internal/platform"
	"github.com/indspenceable/gosu/internal/platform/tui"
	"github.com/indspenceable/gosu/internal/storage"
)

var (
	flagLogFile       string
	flagScreenshotDir string
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play inside the terminal, drawn with half-block characters.
The terminal must report mouse presses and drags.

Controls:
  Mouse button - Steer toward the pointer and thrust
  M            - Mute the collect sound
  Ctrl+S       - Save a screenshot
  Q/Esc/Ctrl+C - Quit

Examples:
  tutorial term
  tutorial term --log-file ./tutorial.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the screen)")
	termCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", ".", "Directory for Ctrl+S screenshots")
}

func runTerm(_ *cobra.Command, _ []string) error {
	// The alternate screen owns stdout, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	cfg, lib, err := loadAssets(logger)
	if err != nil {
		return err
	}

	engine, cue := openAudio(cfg, logger)
	defer engine.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	// Get terminal size before the first resize message arrives
	cols, rows := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	game := newGame(cfg, lib.GameAssets(cue))
	session := platform.NewSession(store, logger, game.ID(), storage.SourceTerminal, playerName())

	if err := tui.Run(game, session, tui.Options{
		TickRate:      flagFPS,
		Seed:          flagSeed,
		LogicalW:      cfg.Window.Width,
		LogicalH:      cfg.Window.Height,
		Cols:          cols,
		Rows:          rows,
		ScreenshotDir: flagScreenshotDir,
		Muter:         engine,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("Final score: %d\n", session.Score())
	return nil
}
