package desktop

import (
	"image"
	"math"
	"testing"

	"github.com/indspenceable/gosu/internal/core"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSpriteGeoM(t *testing.T) {
	ship := core.NewSprite("ship", image.NewRGBA(image.Rect(0, 0, 50, 50)))
	bg := core.NewSprite("bg", image.NewRGBA(image.Rect(0, 0, 64, 48)))

	tests := []struct {
		name         string
		op           core.DrawOp
		sx, sy       float64 // Point in sprite pixels
		wantX, wantY float64 // Where it lands on screen
	}{
		{
			name:  "top-left blit",
			op:    core.DrawOp{Sprite: bg, X: 10, Y: 20, ScaleX: 1, ScaleY: 1},
			sx:    0,
			sy:    0,
			wantX: 10,
			wantY: 20,
		},
		{
			name:  "scaled to fill",
			op:    core.DrawOp{Sprite: bg, ScaleX: 16, ScaleY: 16},
			sx:    64,
			sy:    48,
			wantX: 1024,
			wantY: 768,
		},
		{
			name:  "centered",
			op:    core.DrawOp{Sprite: ship, X: 512, Y: 384, AnchorX: 0.5, AnchorY: 0.5, ScaleX: 1, ScaleY: 1},
			sx:    25,
			sy:    25,
			wantX: 512,
			wantY: 384,
		},
		{
			// The nose at the top middle points right after a quarter turn clockwise
			name:  "quarter turn",
			op:    core.DrawOp{Sprite: ship, X: 512, Y: 384, AnchorX: 0.5, AnchorY: 0.5, ScaleX: 1, ScaleY: 1, Angle: math.Pi / 2},
			sx:    25,
			sy:    0,
			wantX: 537,
			wantY: 384,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := spriteGeoM(tc.op)
			x, y := g.Apply(tc.sx, tc.sy)
			if !near(x, tc.wantX) || !near(y, tc.wantY) {
				t.Errorf("(%v, %v) -> (%v, %v), expected (%v, %v)", tc.sx, tc.sy, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}
