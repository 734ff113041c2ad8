// Package stars implements the star collecting tutorial game.
//
// The game is pure logic: platforms feed it one core.InputFrame per tick and
// replay the core.Canvas it records. Nothing in here touches a window, a
// terminal or a speaker.
package stars

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/indspenceable/gosu/internal/config"
	"github.com/indspenceable/gosu/internal/core"
)

// Assets are the decoded media the game draws with. They are loaded once and
// shared read-only; the game never mutates them.
type Assets struct {
	Background *core.Sprite
	Star       core.Animation
	Ship       *core.Sprite
	Cue        core.Sound
}

var _ core.Game = (*Game)(nil)

// Game is the loop controller. It owns the player and the live stars.
type Game struct {
	cfg    config.TutorialConfig
	assets Assets
	clock  func() int64

	rng     *rand.Rand
	tick    uint64
	tickHz  int
	screenW int
	screenH int

	player *Player
	stars  []*Star
}

// GameID identifies the game's runs in the scores table.
const GameID = "tutorial"

// New creates a game with the given tuning and media. Call Reset before Step.
func New(cfg config.TutorialConfig, assets Assets) *Game {
	return &Game{cfg: cfg, assets: assets}
}

// ID returns GameID.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// SetClock replaces the animation clock with a function returning elapsed
// milliseconds. By default the clock is derived from the tick counter, which
// keeps rendering deterministic.
func (g *Game) SetClock(clock func() int64) {
	g.clock = clock
}

// Reset initializes/restarts the game: the player is parked in the middle of
// the screen, the score is zero and there are no stars.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickHz = cfg.TickRate
	if g.tickHz <= 0 {
		g.tickHz = 60
	}

	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	if g.screenW <= 0 || g.screenH <= 0 {
		g.screenW, g.screenH = g.cfg.Window.Width, g.cfg.Window.Height
	}

	g.player = NewPlayer(g.cfg.Player, g.assets.Ship, g.assets.Cue)
	g.player.Warp(float64(g.screenW/2), float64(g.screenH/2))
	g.stars = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if t, ok := in.FirstTouch(); ok {
		g.player.RotateTowards(t.X, t.Y)
		g.player.Accelerate()
	}
	g.player.Move()

	before := len(g.stars)
	g.stars = g.player.CollectStars(g.stars)
	collected := before - len(g.stars)

	if g.rng.Intn(g.cfg.Stars.SpawnOneIn) == 0 && len(g.stars) < g.cfg.Stars.Max {
		g.spawn()
	}

	g.tick++
	return core.StepResult{
		State:     g.State(),
		Collected: collected,
	}
}

func (g *Game) spawn() {
	s := NewStar(g.assets.Star, g.rng, g.screenW, g.screenH, g.cfg.Stars)
	g.stars = append(g.stars, s)
}

// Render records the current frame into c, replacing whatever it held.
// Layers: background, stars in spawn order, player, score.
func (g *Game) Render(c *core.Canvas) {
	c.Reset()

	if bg := g.assets.Background; bg != nil && bg.Width() > 0 && bg.Height() > 0 {
		sx := float64(g.screenW) / float64(bg.Width())
		sy := float64(g.screenH) / float64(bg.Height())
		c.DrawImage(bg, 0, 0, core.ZBackground, sx, sy, core.ColorWhite, core.BlendNormal)
	}

	elapsed := g.elapsedMillis()
	for _, s := range g.stars {
		s.Draw(c, elapsed)
	}

	g.player.Draw(c)

	c.DrawText(g.scoreText(), 10, 10, core.ZUI, g.cfg.Assets.FontSize, core.ColorYellow)
}

func (g *Game) scoreText() string {
	return fmt.Sprintf("Score: %d", g.player.Score())
}

func (g *Game) elapsedMillis() int64 {
	if g.clock != nil {
		return g.clock()
	}
	return int64(g.tick) * 1000 / int64(g.tickHz)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.player.Score()),
		GameOver: false,
	}
}

// Player returns the controlled ship.
func (g *Game) Player() *Player {
	return g.player
}

// Stars returns the live stars in spawn order.
func (g *Game) Stars() []*Star {
	return slices.Clone(g.stars)
}

// ScreenSize returns the logical screen the game simulates in.
func (g *Game) ScreenSize() (w, h int) {
	return g.screenW, g.screenH
}
