package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"github.com/indspenceable/gosu/internal/core"
	"github.com/indspenceable/gosu/internal/platform"
)

// Options configure a terminal run.
type Options struct {
	TickRate      int
	Seed          int64
	LogicalW      int // Game coordinate space
	LogicalH      int
	Cols, Rows    int // Initial terminal size, until the first resize message
	ScreenshotDir string
	Muter         platform.Muter     // nil when there is no sound to mute
	Renderer      *lipgloss.Renderer // nil for the process's own terminal
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	session    *platform.Session
	canvas     *core.Canvas
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	pointer    Pointer
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, session *platform.Session, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Cols <= 0 || opts.Rows <= 0 {
		opts.Cols, opts.Rows = 80, 24
	}

	cfg := core.RuntimeConfig{
		ScreenW:  opts.LogicalW,
		ScreenH:  opts.LogicalH,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	}

	h := help.New()
	h.Width = opts.Cols

	return Model{
		game:       game,
		session:    session,
		canvas:     core.NewCanvas(opts.LogicalW, opts.LogicalH),
		screen:     core.NewScreen(opts.Cols, playRows(opts.Rows)),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// playRows is the number of rows left for the game under the status line.
func playRows(rows int) int {
	return max(rows-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.Update(msg, m.screen.Width(), m.screen.Height(), m.config.ScreenW, m.config.ScreenH)
		return m, nil

	case tea.WindowSizeMsg:
		// The game keeps its logical size; only the raster changes
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionMute:
		if m.opts.Muter == nil {
			m.status = "no sound here"
		} else if m.opts.Muter.ToggleMute() {
			m.status = "muted"
		} else {
			m.status = "sound on"
		}

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.pointer.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.session != nil {
		m.session.Record(m.gameState.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// draw renders the game into the half-block screen.
func (m Model) draw() {
	m.game.Render(m.canvas)
	Rasterize(m.screen, m.canvas.Ops(), m.config.ScreenW, m.config.ScreenH)
}

// saveScreenshot writes the current frame as a PNG, one image pixel per
// half-block pixel.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".gosu", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dc := gg.NewContext(m.screen.Width(), m.screen.PixelHeight())
	defer dc.Close()
	for y := 0; y < m.screen.PixelHeight(); y++ {
		for x := 0; x < m.screen.Width(); x++ {
			dc.SetPixel(x, y, gg.FromColor(m.screen.Pixel(x, y)))
		}
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))
	if err := dc.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	statusStyle := m.opts.Renderer.NewStyle().Foreground(lipgloss.Color("241"))
	line := m.help.View(m.keys)
	if m.status != "" {
		line += "  " + m.status
	}
	return RenderScreen(m.opts.Renderer, m.screen) + "\n" + statusStyle.Render(line)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and stores the run when it ends.
func Run(game core.Game, session *platform.Session, opts Options) error {
	model := NewModel(game, session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press and drag stand in for touches
	)

	_, err := p.Run()
	if session != nil {
		session.Finish()
	}
	return err
}
