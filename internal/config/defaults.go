package config

import (
	_ "embed"
)

//go:embed defaults/tutorial.yaml
var defaultTutorialYAML []byte

// Default returns the built-in configuration, matching defaults/tutorial.yaml.
func Default() TutorialConfig {
	return TutorialConfig{
		Window: WindowConfig{
			Title:  "Gosu Tutorial Game",
			Width:  1024,
			Height: 768,
		},
		Player: PlayerConfig{
			TurnBlend:     0.1,
			Thrust:        0.5,
			Damping:       0.95,
			CollectRadius: 35,
			StarPoints:    10,
		},
		Stars: StarsConfig{
			Max:         25,
			SpawnOneIn:  25,
			TintMin:     40,
			TintMax:     255,
			FrameMillis: 100,
		},
		Assets: AssetsConfig{
			Dir:        "media",
			Background: "Space.png",
			StarSheet:  "Star.png",
			TileW:      25,
			TileH:      25,
			Player:     "Starfighter.bmp",
			Beep:       "Beep.wav",
			FontSize:   20,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTutorialYAML
}
