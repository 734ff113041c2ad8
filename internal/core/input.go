package core

// Action represents a platform-level intent, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionQuit              // Q, Ctrl+C, Escape - exit the game
	ActionMute              // M - toggle the sound cue
	ActionScreenshot        // Ctrl+S - save the current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionMute:
		return "Mute"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// Touch is one active pointer, in logical screen coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Touches lists the pointers held down this tick, oldest first.
	Touches []Touch

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddTouch appends an active pointer.
func (f *InputFrame) AddTouch(id int, x, y float64) {
	f.Touches = append(f.Touches, Touch{ID: id, X: x, Y: y})
}

// FirstTouch returns the first active pointer, if any.
func (f InputFrame) FirstTouch() (Touch, bool) {
	if len(f.Touches) == 0 {
		return Touch{}, false
	}
	return f.Touches[0], true
}

// Clear resets all actions and touches for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Touches = f.Touches[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Touches) > 0 {
		clone.Touches = append([]Touch(nil), f.Touches...)
	}
	return clone
}
