// Package config provides YAML-based configuration loading for the tutorial game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// TutorialConfig contains all configuration for the star collecting game.
type TutorialConfig struct {
	Window WindowConfig `yaml:"window"`
	Player PlayerConfig `yaml:"player"`
	Stars  StarsConfig  `yaml:"stars"`
	Assets AssetsConfig `yaml:"assets"`
	Audio  AudioConfig  `yaml:"audio"`
}

// WindowConfig defines the window and logical screen.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// PlayerConfig defines the ship's handling.
type PlayerConfig struct {
	TurnBlend     float64 `yaml:"turn_blend"`     // Fraction of the heading error corrected per tick
	Thrust        float64 `yaml:"thrust"`         // Velocity added per accelerate call
	Damping       float64 `yaml:"damping"`        // Velocity multiplier applied per move
	CollectRadius float64 `yaml:"collect_radius"` // Stars closer than this are collected
	StarPoints    uint    `yaml:"star_points"`    // Score per collected star
}

// StarsConfig defines star spawning and appearance.
type StarsConfig struct {
	Max         int   `yaml:"max"`          // Live star cap
	SpawnOneIn  int   `yaml:"spawn_one_in"` // A star spawns with probability 1/SpawnOneIn per tick
	TintMin     int   `yaml:"tint_min"`
	TintMax     int   `yaml:"tint_max"`
	FrameMillis int64 `yaml:"frame_millis"` // Animation frame duration
}

// AssetsConfig names the media files, relative to Dir.
type AssetsConfig struct {
	Dir        string  `yaml:"dir"`
	Background string  `yaml:"background"`
	StarSheet  string  `yaml:"star_sheet"`
	TileW      int     `yaml:"tile_w"`
	TileH      int     `yaml:"tile_h"`
	Player     string  `yaml:"player"`
	Beep       string  `yaml:"beep"`
	FontSize   float64 `yaml:"font_size"`
}

// AudioConfig controls the sound cue.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Gain in [0, 1]
}

// Validate checks that every value is usable by the game.
func (c TutorialConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Player.TurnBlend < 0 || c.Player.TurnBlend > 1:
		return fmt.Errorf("%w: player.turn_blend %v not in [0, 1]", ErrInvalid, c.Player.TurnBlend)
	case c.Player.Damping <= 0 || c.Player.Damping >= 1:
		return fmt.Errorf("%w: player.damping %v not in (0, 1)", ErrInvalid, c.Player.Damping)
	case c.Player.Thrust < 0:
		return fmt.Errorf("%w: player.thrust %v is negative", ErrInvalid, c.Player.Thrust)
	case c.Player.CollectRadius <= 0:
		return fmt.Errorf("%w: player.collect_radius %v must be positive", ErrInvalid, c.Player.CollectRadius)
	case c.Stars.Max < 0:
		return fmt.Errorf("%w: stars.max %d is negative", ErrInvalid, c.Stars.Max)
	case c.Stars.SpawnOneIn < 1:
		return fmt.Errorf("%w: stars.spawn_one_in %d must be at least 1", ErrInvalid, c.Stars.SpawnOneIn)
	case c.Stars.TintMin < 0 || c.Stars.TintMin > c.Stars.TintMax || c.Stars.TintMax > 255:
		return fmt.Errorf("%w: stars tint range [%d, %d]", ErrInvalid, c.Stars.TintMin, c.Stars.TintMax)
	case c.Stars.FrameMillis <= 0:
		return fmt.Errorf("%w: stars.frame_millis %d must be positive", ErrInvalid, c.Stars.FrameMillis)
	case c.Assets.TileW <= 0 || c.Assets.TileH <= 0:
		return fmt.Errorf("%w: assets tile size %dx%d", ErrInvalid, c.Assets.TileW, c.Assets.TileH)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %v not in [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
