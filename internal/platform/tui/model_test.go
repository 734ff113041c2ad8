package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/indspenceable/gosu/internal/core"
	"github.com/indspenceable/gosu/internal/platform"
	"github.com/indspenceable/gosu/internal/storage"
)

// fakeGame records the input it is stepped with.
type fakeGame struct {
	resets  int
	steps   int
	touches []core.Touch
	score   int
}

func (g *fakeGame) ID() string                   { return "fake" }
func (g *fakeGame) Title() string                { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState        { return core.GameState{Score: g.score} }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.touches = append(g.touches[:0], in.Touches...)
	g.score += 10
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Canvas) {
	dst.Reset()
	dst.DrawText("hello", 0, 0, core.ZUI, 20, core.ColorYellow)
}

type fakeMuter struct{ muted bool }

func (m *fakeMuter) ToggleMute() bool {
	m.muted = !m.muted
	return m.muted
}

func testOptions() Options {
	return Options{TickRate: 60, Seed: 1, LogicalW: 1024, LogicalH: 768, Cols: 64, Rows: 25}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testOptions())

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", g.resets)
	}
}

func TestModelMouseBecomesTouch(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testOptions())

	// Screen is 64x24 cells for the game; cell (31, 11) is near the middle
	m = update(t, m, tea.MouseMsg{X: 31, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	if len(g.touches) != 1 {
		t.Fatalf("expected one touch, got %d", len(g.touches))
	}
	touch := g.touches[0]
	if touch.X != 31.5*1024/64 || touch.Y != 11.5*768/24 {
		t.Errorf("touch at (%v, %v)", touch.X, touch.Y)
	}

	// Dragging moves the touch
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	if len(g.touches) != 1 || g.touches[0].X != 0.5*1024/64 {
		t.Errorf("drag not followed: %+v", g.touches)
	}

	// Release clears it
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	update(t, m, TickMsg{})
	if len(g.touches) != 0 {
		t.Errorf("touch should end on release, got %+v", g.touches)
	}
}

func TestModelMotionWithoutPressIgnored(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testOptions())

	m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion})
	update(t, m, TickMsg{})

	if len(g.touches) != 0 {
		t.Errorf("hover should not steer, got %+v", g.touches)
	}
}

func TestModelKeys(t *testing.T) {
	g := &fakeGame{}
	muter := &fakeMuter{}
	opts := testOptions()
	opts.Muter = muter
	m := NewModel(g, nil, opts)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if !muter.muted {
		t.Error("m should mute")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelScreenshot(t *testing.T) {
	g := &fakeGame{}
	opts := testOptions()
	opts.ScreenshotDir = t.TempDir()
	m := NewModel(g, nil, opts)

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if filepath.Dir(path) != opts.ScreenshotDir || !strings.HasSuffix(path, ".png") {
		t.Errorf("screenshot written to %s", path)
	}
}

func TestModelViewShowsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testOptions())

	view := m.View()
	if !strings.Contains(view, "h") || !strings.Contains(view, "quit") {
		t.Errorf("view should contain the game text and the help line")
	}
}

func TestModelRecordsSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{}
	session := platform.NewSession(store, log.New(io.Discard), g.ID(), storage.SourceTerminal, "tester")
	m := NewModel(g, session, testOptions())

	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if session.Score() != 20 {
		t.Errorf("session score = %d, expected 20", session.Score())
	}

	run, saved := session.Finish()
	if !saved || run.Score != 20 || run.Player != "tester" {
		t.Errorf("Finish() = %+v, %v", run, saved)
	}

	// A second finish does not store the run again
	if _, saved := session.Finish(); !saved {
		t.Error("second Finish() should still report the run as saved")
	}
	all, err := store.AllScores("fake")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("run stored %d times, expected once", len(all))
	}
}
