package tui

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/indspenceable/gosu/internal/core"
)

func solidSprite(w, h int, c color.Color) *core.Sprite {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return core.NewSprite("solid", img)
}

func TestRasterizeScalesToFill(t *testing.T) {
	screen := core.NewScreen(8, 4) // 8x8 pixels
	bg := solidSprite(4, 4, color.RGBA{0, 0, 200, 255})

	c := core.NewCanvas(16, 16)
	c.DrawImage(bg, 0, 0, core.ZBackground, 4, 4, core.ColorWhite, core.BlendNormal)

	Rasterize(screen, c.Ops(), 16, 16)

	for py := 0; py < screen.PixelHeight(); py++ {
		for px := 0; px < screen.Width(); px++ {
			if got := screen.Pixel(px, py); got.B != 200 {
				t.Fatalf("pixel (%d,%d) = %+v, expected the background", px, py, got)
			}
		}
	}
}

func TestRasterizeAdditive(t *testing.T) {
	screen := core.NewScreen(4, 2)
	base := solidSprite(4, 4, color.RGBA{100, 0, 0, 255})
	glow := solidSprite(4, 4, color.RGBA{200, 50, 0, 255})

	c := core.NewCanvas(4, 4)
	c.DrawImage(base, 0, 0, core.ZBackground, 1, 1, core.ColorWhite, core.BlendNormal)
	c.DrawImage(glow, 0, 0, core.ZStars, 1, 1, core.ColorWhite, core.BlendAdditive)

	Rasterize(screen, c.Ops(), 4, 4)

	got := screen.Pixel(1, 1)
	if got.R != 255 || got.G != 50 {
		t.Errorf("additive pixel = %+v, expected red saturated and green 50", got)
	}
}

func TestRasterizeTint(t *testing.T) {
	screen := core.NewScreen(4, 2)
	white := solidSprite(4, 4, color.White)

	c := core.NewCanvas(4, 4)
	c.DrawImage(white, 0, 0, core.ZStars, 1, 1, core.RGB(40, 120, 255), core.BlendAdditive)

	Rasterize(screen, c.Ops(), 4, 4)

	if got := screen.Pixel(2, 2); got != core.RGB(40, 120, 255) {
		t.Errorf("tinted pixel = %+v", got)
	}
}

func TestRasterizeRotation(t *testing.T) {
	screen := core.NewScreen(20, 10) // 20x20 pixels, one per logical unit
	// A 2x10 bar pointing up, centered on (10, 10)
	bar := solidSprite(2, 10, color.RGBA{0, 255, 0, 255})

	c := core.NewCanvas(20, 20)
	c.DrawRot(bar, 10, 10, core.ZPlayer, math.Pi/2)

	Rasterize(screen, c.Ops(), 20, 20)

	// Rotated a quarter turn it lies along the x axis
	if screen.Pixel(13, 10).G != 255 || screen.Pixel(7, 10).G != 255 {
		t.Error("rotated bar should cover the horizontal line through the center")
	}
	if screen.Pixel(10, 4).G != 0 || screen.Pixel(10, 15).G != 0 {
		t.Error("rotated bar should no longer cover the vertical line")
	}
}

func TestRasterizeText(t *testing.T) {
	screen := core.NewScreen(20, 10)
	c := core.NewCanvas(20, 20)
	c.DrawText("Score: 10", 2, 4, core.ZUI, 20, core.ColorYellow)

	Rasterize(screen, c.Ops(), 20, 20)

	cell := screen.GetCell(2, 2)
	if cell.Rune != 'S' || cell.FG != core.ColorYellow {
		t.Errorf("cell (2,2) = %q %+v, expected yellow S", cell.Rune, cell.FG)
	}
	if got := string([]rune(screen.Row(2))[2:11]); got != "Score: 10" {
		t.Errorf("row text = %q", got)
	}
}

func TestRasterizeClipsOffscreen(t *testing.T) {
	screen := core.NewScreen(4, 2)
	s := solidSprite(4, 4, color.White)

	c := core.NewCanvas(4, 4)
	c.DrawImage(s, -10, -10, core.ZStars, 1, 1, core.ColorWhite, core.BlendNormal)
	c.DrawImage(s, 100, 100, core.ZStars, 1, 1, core.ColorWhite, core.BlendNormal)

	Rasterize(screen, c.Ops(), 4, 4)

	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			if screen.Pixel(px, py) != core.ColorBlack {
				t.Fatalf("pixel (%d,%d) painted by an offscreen sprite", px, py)
			}
		}
	}
}
