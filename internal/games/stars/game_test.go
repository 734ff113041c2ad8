package stars

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/indspenceable/gosu/internal/config"
	"github.com/indspenceable/gosu/internal/core"
)

func TestResetParksPlayerInCenter(t *testing.T) {
	g := newTestGame(1, nil)

	x, y := g.Player().Position()
	if x != 512 || y != 384 {
		t.Errorf("player at (%v, %v), expected (512, 384)", x, y)
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0", g.State().Score)
	}
	if len(g.Stars()) != 0 {
		t.Errorf("expected no stars, got %d", len(g.Stars()))
	}
}

func TestResetFallsBackToWindowSize(t *testing.T) {
	g := New(config.Default(), testAssets(nil))
	g.Reset(core.RuntimeConfig{Seed: 3})

	w, h := g.ScreenSize()
	if w != 1024 || h != 768 {
		t.Errorf("ScreenSize() = %dx%d, expected 1024x768", w, h)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(12345, nil)
	g2 := newTestGame(12345, nil)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i%120 < 60 {
			input.AddTouch(0, float64(100+i), 200)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot()); diff != "" {
		t.Errorf("snapshots differ (-g1, +g2):\n%s", diff)
	}
}

func TestStarCountNeverExceedsCap(t *testing.T) {
	tests := []struct {
		name       string
		max        int
		spawnOneIn int
	}{
		{"defaults", 25, 25},
		{"spawn every tick", 25, 1},
		{"small cap", 3, 1},
		{"no stars", 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Stars.Max = tc.max
			cfg.Stars.SpawnOneIn = tc.spawnOneIn

			g := New(cfg, testAssets(nil))
			g.Reset(core.RuntimeConfig{ScreenW: 1024, ScreenH: 768, TickRate: 60, Seed: 99})

			input := core.NewInputFrame()
			for i := 0; i < 5000; i++ {
				input.Clear()
				if i%300 < 150 {
					input.AddTouch(0, float64((i*7)%1024), float64((i*13)%768))
				}
				g.Step(input)

				n := len(g.Stars())
				if n < 0 || n > tc.max {
					t.Fatalf("tick %d: %d live stars, cap is %d", i, n, tc.max)
				}
			}
		})
	}
}

func TestSpawnEveryTickFillsUp(t *testing.T) {
	cfg := config.Default()
	cfg.Stars.SpawnOneIn = 1
	cfg.Stars.Max = 5

	g := New(cfg, testAssets(nil))
	g.Reset(core.RuntimeConfig{ScreenW: 1024, ScreenH: 768, TickRate: 60, Seed: 7})

	g.Step(core.NewInputFrame())
	if len(g.Stars()) != 1 {
		t.Fatalf("expected a star after the first tick, got %d", len(g.Stars()))
	}
}

func TestSpawnedStarsStayOnScreen(t *testing.T) {
	cfg := config.Default()
	cfg.Stars.SpawnOneIn = 1
	cfg.Stars.Max = 1000

	g := New(cfg, testAssets(nil))
	g.Reset(core.RuntimeConfig{ScreenW: 640, ScreenH: 480, TickRate: 60, Seed: 5})

	for i := 0; i < 500; i++ {
		g.Step(core.NewInputFrame())
	}

	for i, s := range g.Stars() {
		if s.X() < 0 || s.X() > 640 || s.Y() < 0 || s.Y() > 480 {
			t.Errorf("star %d at (%v, %v) outside the screen", i, s.X(), s.Y())
		}
		tint := s.Tint()
		for _, ch := range []uint8{tint.R, tint.G, tint.B} {
			if ch < 40 {
				t.Errorf("star %d tint channel %d below 40", i, ch)
			}
		}
		if tint.A != 255 {
			t.Errorf("star %d alpha %d, expected 255", i, tint.A)
		}
	}
}

func TestTouchSteersAndThrusts(t *testing.T) {
	g := newTestGame(1, nil)

	input := core.NewInputFrame()
	input.AddTouch(0, 900, 384)
	input.AddTouch(1, 0, 384)

	for i := 0; i < 60; i++ {
		g.Step(input)
	}

	x, _ := g.Player().Position()
	if x <= 512 {
		t.Errorf("player should head toward the first touch, x = %v", x)
	}
	if g.Player().Angle() <= 0 {
		t.Errorf("player should turn clockwise toward the right, angle = %v", g.Player().Angle())
	}
}

func TestNoTouchCoasts(t *testing.T) {
	g := newTestGame(1, nil)
	g.Player().vx = 4

	g.Step(core.NewInputFrame())

	if g.Player().Angle() != 0 {
		t.Errorf("heading changed without input: %v", g.Player().Angle())
	}
	vx, _ := g.Player().Velocity()
	if math.Abs(vx-3.8) > 1e-9 {
		t.Errorf("vx = %v, expected 3.8", vx)
	}
}

func TestCollectScenario(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(1, cue)

	x, y := g.Player().Position()
	g.stars = append(g.stars, newStarAt(g.assets.Star, x, y, 100))

	g.stars = g.Player().CollectStars(g.stars)

	if g.State().Score != 10 {
		t.Errorf("Score = %d, expected 10", g.State().Score)
	}
	if len(g.stars) != 0 {
		t.Errorf("expected empty star collection, got %d", len(g.stars))
	}
	if cue.plays != 1 {
		t.Errorf("cue played %d times, expected 1", cue.plays)
	}
}

func TestStepReportsCollected(t *testing.T) {
	cfg := config.Default()
	cfg.Stars.Max = 0

	g := New(cfg, testAssets(nil))
	g.Reset(core.DefaultConfig())
	g.stars = []*Star{
		newStarAt(nil, 512, 384, 100),
		newStarAt(nil, 520, 384, 100),
		newStarAt(nil, 10, 10, 100),
	}

	res := g.Step(core.NewInputFrame())

	if res.Collected != 2 {
		t.Errorf("Collected = %d, expected 2", res.Collected)
	}
	if res.State.Score != 20 {
		t.Errorf("Score = %d, expected 20", res.State.Score)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	g := newTestGame(42, nil)
	input := core.NewInputFrame()
	input.AddTouch(0, 100, 100)
	for i := 0; i < 300; i++ {
		g.Step(input)
	}

	before := g.Snapshot()

	c1 := core.NewCanvas(1024, 768)
	c2 := core.NewCanvas(1024, 768)
	g.Render(c1)
	g.Render(c2)

	if diff := cmp.Diff(c1.Ops(), c2.Ops()); diff != "" {
		t.Errorf("draw lists differ (-first, +second):\n%s", diff)
	}
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("Render mutated the game (-before, +after):\n%s", diff)
	}

	// Rendering into a used canvas replaces its contents
	g.Render(c1)
	if c1.Len() != c2.Len() {
		t.Errorf("re-render left %d ops, expected %d", c1.Len(), c2.Len())
	}
}

func TestRenderLayerOrder(t *testing.T) {
	g := newTestGame(1, nil)
	g.stars = []*Star{
		newStarAt(g.assets.Star, 100, 100, 100),
		newStarAt(g.assets.Star, 200, 200, 100),
	}

	c := core.NewCanvas(1024, 768)
	g.Render(c)
	ops := c.Ops()

	wantZ := []core.ZOrder{core.ZBackground, core.ZStars, core.ZStars, core.ZPlayer, core.ZUI}
	gotZ := make([]core.ZOrder, len(ops))
	for i, op := range ops {
		gotZ[i] = op.Z
	}
	if diff := cmp.Diff(wantZ, gotZ); diff != "" {
		t.Fatalf("layer order mismatch (-want, +got):\n%s", diff)
	}

	bg := ops[0]
	if bg.ScaleX != 1024.0/64 || bg.ScaleY != 768.0/48 {
		t.Errorf("background scale (%v, %v), expected to fill the screen", bg.ScaleX, bg.ScaleY)
	}
	if ops[1].X != 100-12.5 || ops[2].X != 200-12.5 {
		t.Errorf("stars drawn out of spawn order: x %v, %v", ops[1].X, ops[2].X)
	}

	text := ops[4]
	if text.Text != "Score: 0" || text.X != 10 || text.Y != 10 {
		t.Errorf("score text %q at (%v, %v)", text.Text, text.X, text.Y)
	}
	if text.Color != core.ColorYellow || text.Size != 20 {
		t.Errorf("score text color %v size %v", text.Color, text.Size)
	}
}

func TestRenderUsesClock(t *testing.T) {
	g := newTestGame(1, nil)
	g.stars = []*Star{newStarAt(g.assets.Star, 100, 100, 100)}

	g.SetClock(func() int64 { return 250 })

	c := core.NewCanvas(1024, 768)
	g.Render(c)

	for _, op := range c.Ops() {
		if op.Z == core.ZStars && op.Sprite != g.assets.Star[2] {
			t.Errorf("at 250ms expected frame 2, got %s", op.Sprite.Name)
		}
	}
}
