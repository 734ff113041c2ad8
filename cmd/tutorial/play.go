package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/indspenceable/gosu/internal/audio"
	"github.com/indspenceable/gosu/internal/config"
	"github.com/indspenceable/gosu/internal/core"
	"github.com/indspenceable/gosu/internal/platform"
	"github.com/indspenceable/gosu/internal/platform/desktop"
	"github.com/indspenceable/gosu/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open the game window and play.

Controls:
  Mouse button / touch - Steer toward the pointer and thrust
  M                    - Mute the collect sound
  Esc                  - Quit

Examples:
  tutorial play
  tutorial play --seed 42
  tutorial play --media ./media --config ./my-tutorial.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
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

	game := newGame(cfg, lib.GameAssets(cue))
	session := platform.NewSession(store, logger, game.ID(), storage.SourceWindow, playerName())

	logger.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height, "fps", flagFPS)
	return desktop.Run(game, session, desktop.Options{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Muter:    engine,
		Logger:   logger,
	})
}

// openAudio opens the speaker and loads the collect cue. Sound is optional:
// any failure is logged and the game runs silently.
func openAudio(cfg config.TutorialConfig, logger *log.Logger) (*audio.Engine, core.Sound) {
	engine := audio.NewEngine(cfg.Audio, logger)
	if err := engine.Init(); err != nil {
		logger.Warn("could not open the speaker, playing without sound", "error", err)
	}

	cue, err := engine.Load(filepath.Join(cfg.Assets.Dir, cfg.Assets.Beep))
	if err != nil {
		logger.Warn("could not load the collect sound", "error", err)
		return engine, nil
	}
	return engine, cue
}
