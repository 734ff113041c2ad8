package tui

import (
	"math"

	"github.com/indspenceable/gosu/internal/core"
)

// Rasterize paints a draw list onto a half-block screen. The logical
// logicalW×logicalH space is stretched over the screen's pixel grid, which
// has one pixel per column and two per row.
func Rasterize(dst *core.Screen, ops []core.DrawOp, logicalW, logicalH int) {
	dst.Clear()
	if logicalW <= 0 || logicalH <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sx := float64(dst.Width()) / float64(logicalW)
	sy := float64(dst.PixelHeight()) / float64(logicalH)

	for _, op := range ops {
		switch {
		case op.Sprite != nil:
			rasterSprite(dst, op, sx, sy)
		case op.Text != "":
			cx := int(op.X * sx)
			cy := int(op.Y*sy) / 2
			dst.DrawText(cx, cy, op.Text, op.Color)
		}
	}
}

// rasterSprite samples the sprite at every pixel center its transformed
// bounds cover, mapping each center back into sprite space.
func rasterSprite(dst *core.Screen, op core.DrawOp, sx, sy float64) {
	w, h := float64(op.Sprite.Width()), float64(op.Sprite.Height())
	if w == 0 || h == 0 || op.ScaleX == 0 || op.ScaleY == 0 {
		return
	}
	ax, ay := op.AnchorX*w, op.AnchorY*h
	sin, cos := math.Sincos(op.Angle)

	toScreen := func(lx, ly float64) (float64, float64) {
		dx, dy := (lx-ax)*op.ScaleX, (ly-ay)*op.ScaleY
		return (op.X + dx*cos - dy*sin) * sx, (op.Y + dx*sin + dy*cos) * sy
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		x, y := toScreen(c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	x0 := core.Clamp(int(math.Floor(minX)), 0, dst.Width())
	x1 := core.Clamp(int(math.Ceil(maxX)), 0, dst.Width())
	y0 := core.Clamp(int(math.Floor(minY)), 0, dst.PixelHeight())
	y1 := core.Clamp(int(math.Ceil(maxY)), 0, dst.PixelHeight())

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			// Pixel center back to logical space, then into the sprite
			dx := (float64(px)+0.5)/sx - op.X
			dy := (float64(py)+0.5)/sy - op.Y
			u := (dx*cos+dy*sin)/op.ScaleX + ax
			v := (-dx*sin+dy*cos)/op.ScaleY + ay
			if u < 0 || v < 0 || u >= w || v >= h {
				continue
			}

			src := op.Sprite.At(int(u), int(v)).Modulate(op.Color)
			if src.A == 0 {
				continue
			}

			under := dst.Pixel(px, py)
			if op.Blend == core.BlendAdditive {
				dst.SetPixel(px, py, under.Add(src))
			} else {
				dst.SetPixel(px, py, under.Over(src))
			}
		}
	}
}
