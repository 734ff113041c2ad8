package stars

import (
	"math/rand"

	"github.com/indspenceable/gosu/internal/config"
	"github.com/indspenceable/gosu/internal/core"
)

// Star is a collectible that sits where it spawned until the player picks it up.
type Star struct {
	anim        core.Animation
	frameMillis int64
	x, y        float64
	tint        core.Color
}

// NewStar places a star uniformly over a w×h screen with a random tint.
// Each tint channel is drawn from [cfg.TintMin, cfg.TintMax]; alpha is always opaque.
func NewStar(anim core.Animation, rng *rand.Rand, w, h int, cfg config.StarsConfig) *Star {
	channel := func() uint8 {
		return uint8(cfg.TintMin + rng.Intn(cfg.TintMax-cfg.TintMin+1))
	}
	tint := core.RGB(channel(), channel(), channel())

	return &Star{
		anim:        anim,
		frameMillis: cfg.FrameMillis,
		x:           rng.Float64() * float64(w),
		y:           rng.Float64() * float64(h),
		tint:        tint,
	}
}

// newStarAt creates a star at a fixed position with a white tint.
func newStarAt(anim core.Animation, x, y float64, frameMillis int64) *Star {
	return &Star{anim: anim, frameMillis: frameMillis, x: x, y: y, tint: core.ColorWhite}
}

// X returns the horizontal center of the star.
func (s *Star) X() float64 { return s.x }

// Y returns the vertical center of the star.
func (s *Star) Y() float64 { return s.y }

// Tint returns the color the star frames are modulated with.
func (s *Star) Tint() core.Color { return s.tint }

// Draw records the animation frame for the elapsed time, centered on the star
// and blended additively.
func (s *Star) Draw(c *core.Canvas, elapsedMillis int64) {
	frame := s.anim.Frame(elapsedMillis, s.frameMillis)
	if frame == nil {
		return
	}
	x := s.x - float64(frame.Width())/2
	y := s.y - float64(frame.Height())/2
	c.DrawImage(frame, x, y, core.ZStars, 1, 1, s.tint, core.BlendAdditive)
}
