// tutorial is a small arcade game: steer a starship with the mouse or a
// finger and collect the stars that appear around the screen.
//
// Usage:
//
//	tutorial [play]          - Play in a window (default)
//	tutorial term            - Play in the terminal
//	tutorial serve           - Start SSH server for remote play
//	tutorial scores          - Show high scores
//	tutorial assets bake DIR - Write the generated media files to DIR
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.gosu/scores.db)
//	--config <path>     - Load game settings from a YAML file
//	--media <dir>       - Look for media files in another directory
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/indspenceable/gosu/internal/assets"
	"github.com/indspenceable/gosu/internal/config"
	"github.com/indspenceable/gosu/internal/core"
	"github.com/indspenceable/gosu/internal/games/stars"
	"github.com/indspenceable/gosu/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagMedia    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Collect the stars with a starship",
	Long: `A small arcade game: hold the mouse button (or a finger) where the
ship should go. It turns toward the pointer and thrusts, and every star it
passes close to is worth points.

Available commands:
  play     - Play in a window (default)
  term     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  assets   - Work with the media files

Examples:
  tutorial
  tutorial term --seed 42
  tutorial serve --ssh :2222
  tutorial scores --table`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gosu/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMedia, "media", "", "Media directory (overrides assets.dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(assetsCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tutorial",
		Level:           level,
	}), nil
}

// loadConfig loads the game settings and applies the --media override.
func loadConfig() (config.TutorialConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.TutorialConfig{}, err
	}
	if flagMedia != "" {
		cfg.Assets.Dir = flagMedia
	}
	return cfg, nil
}

// loadAssets loads the game settings and images together.
func loadAssets(logger *log.Logger) (config.TutorialConfig, *assets.Library, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.TutorialConfig{}, nil, err
	}
	lib, err := assets.Load(cfg.Assets, cfg.Window.Width, cfg.Window.Height, logger)
	if err != nil {
		return config.TutorialConfig{}, nil, fmt.Errorf("loading media: %w", err)
	}
	return cfg, lib, nil
}

// newGame creates a game whose star animation follows the wall clock.
func newGame(cfg config.TutorialConfig, a stars.Assets) core.Game {
	g := stars.New(cfg, a)
	start := time.Now()
	g.SetClock(func() int64 {
		return time.Since(start).Milliseconds()
	})
	return g
}

// openStore opens the scores database. Playing works without it, so a
// failure is only logged.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName names the local player in the scores table.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
