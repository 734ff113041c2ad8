package core

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions are logical units: the game always simulates in this
// space and platforms scale it to whatever they display on.
type RuntimeConfig struct {
	ScreenW  int   // Logical screen width
	ScreenH  int   // Logical screen height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1024,
		ScreenH:  768,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Collected int // Stars collected during this tick
}
