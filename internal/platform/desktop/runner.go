// Package desktop runs a game in an Ebitengine window with mouse and touch input.
package desktop

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/indspenceable/gosu/internal/core"
	"github.com/indspenceable/gosu/internal/platform"
)

// mouseTouchID is the touch ID reported for the left mouse button.
const mouseTouchID = -1

// Options configure a window run.
type Options struct {
	TickRate int
	Seed     int64
	Width    int // Logical screen, also the initial window size
	Height   int
	Muter    platform.Muter // nil when there is no sound to mute
	Logger   *log.Logger
}

// Runner adapts a core.Game to ebiten.Game.
type Runner struct {
	game     core.Game
	session  *platform.Session
	opts     Options
	canvas   *core.Canvas
	input    core.InputFrame
	touchIDs []ebiten.TouchID
	images   map[*core.Sprite]*ebiten.Image
	font     *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
}

var _ ebiten.Game = (*Runner)(nil)

// NewRunner resets the game and prepares its renderer.
func NewRunner(game core.Game, session *platform.Session, opts Options) (*Runner, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: failed to load font: %w", err)
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	return &Runner{
		game:    game,
		session: session,
		opts:    opts,
		canvas:  core.NewCanvas(opts.Width, opts.Height),
		input:   core.NewInputFrame(),
		images:  make(map[*core.Sprite]*ebiten.Image),
		font:    src,
		faces:   make(map[float64]*text.GoTextFace),
	}, nil
}

// Update advances the game by one tick.
func (r *Runner) Update() error {
	r.pollInput()

	if r.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if r.input.Has(core.ActionMute) && r.opts.Muter != nil {
		muted := r.opts.Muter.ToggleMute()
		r.opts.Logger.Debug("sound toggled", "muted", muted)
	}

	res := r.game.Step(r.input)
	if r.session != nil {
		r.session.Record(res.State.Score)
	}
	return nil
}

// pollInput collects this tick's touches. Touch IDs are sorted so the oldest
// finger comes first; the mouse stands in for a finger when nothing touches.
func (r *Runner) pollInput() {
	r.input.Clear()

	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])
	slices.Sort(r.touchIDs)
	for _, id := range r.touchIDs {
		x, y := ebiten.TouchPosition(id)
		r.input.AddTouch(int(id), float64(x), float64(y))
	}
	if len(r.touchIDs) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		r.input.AddTouch(mouseTouchID, float64(x), float64(y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		r.input.Set(core.ActionQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		r.input.Set(core.ActionMute)
	}
}

// Draw replays the game's draw list onto the screen.
func (r *Runner) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	r.game.Render(r.canvas)

	for _, op := range r.canvas.Ops() {
		switch {
		case op.Sprite != nil:
			opts := &ebiten.DrawImageOptions{GeoM: spriteGeoM(op)}
			opts.ColorScale.ScaleWithColor(op.Color)
			if op.Blend == core.BlendAdditive {
				opts.Blend = ebiten.BlendLighter
			}
			screen.DrawImage(r.image(op.Sprite), opts)
		case op.Text != "":
			opts := &text.DrawOptions{}
			opts.GeoM.Translate(op.X, op.Y)
			opts.ColorScale.ScaleWithColor(op.Color)
			text.Draw(screen, op.Text, r.face(op.Size), opts)
		}
	}
}

// Layout keeps the logical screen fixed; Ebitengine scales it to the window.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.opts.Width, r.opts.Height
}

// image returns the GPU copy of a sprite, uploading it on first use.
func (r *Runner) image(s *core.Sprite) *ebiten.Image {
	if img, ok := r.images[s]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(s.Img)
	r.images[s] = img
	return img
}

func (r *Runner) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = 20
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: r.font, Size: size}
	r.faces[size] = f
	return f
}

// spriteGeoM maps sprite pixels to logical screen pixels: the anchor moves
// to the origin, then the sprite is scaled, rotated and placed at (X, Y).
func spriteGeoM(op core.DrawOp) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-op.AnchorX*float64(op.Sprite.Width()), -op.AnchorY*float64(op.Sprite.Height()))
	g.Scale(op.ScaleX, op.ScaleY)
	g.Rotate(op.Angle)
	g.Translate(op.X, op.Y)
	return g
}

// Run opens the window and plays until it is closed or Escape is pressed.
// The session is finished whichever way the window goes away.
func Run(game core.Game, session *platform.Session, opts Options) error {
	runner, err := NewRunner(game, session, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(runner.opts.Width, runner.opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(runner.opts.TickRate)

	err = ebiten.RunGame(runner)
	if session != nil {
		session.Finish()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
