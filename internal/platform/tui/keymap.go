package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/indspenceable/gosu/internal/core"
)

// KeyMap defines the key bindings while playing.
type KeyMap struct {
	Quit       key.Binding
	Mute       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Mute, k.Screenshot}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to a platform action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// Pointer tracks the mouse as a single touch point. Terminals report mouse
// positions in cells; the pointer converts them to logical coordinates.
type Pointer struct {
	down bool
	x, y float64
}

// Update applies a mouse message. cols×rows is the area the game is drawn
// in and logicalW×logicalH the game's own coordinate space.
func (p *Pointer) Update(msg tea.MouseMsg, cols, rows, logicalW, logicalH int) {
	if cols <= 0 || rows <= 0 {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		p.down = true
	case tea.MouseActionRelease:
		p.down = false
		return
	case tea.MouseActionMotion:
		if !p.down {
			return
		}
	}

	p.x = (float64(msg.X) + 0.5) * float64(logicalW) / float64(cols)
	p.y = (float64(msg.Y) + 0.5) * float64(logicalH) / float64(rows)
}

// Apply adds the pointer to the frame when it is held down.
func (p Pointer) Apply(frame *core.InputFrame) {
	if p.down {
		frame.AddTouch(0, p.x, p.y)
	}
}

// Down reports whether the pointer is held.
func (p Pointer) Down() bool {
	return p.down
}
