package core

// Game is the interface the platforms drive.
// Games contain pure logic with no external dependencies (no window, terminal or speaker).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides the logical screen size and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render records the current frame into the canvas. It must not change
	// game state, so rendering twice yields the same draw list.
	Render(dst *Canvas)

	// State returns the current game state.
	State() GameState
}

// Factory creates a fresh game instance, one per player session.
type Factory func() Game
