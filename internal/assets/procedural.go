package assets

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"math/rand"

	"github.com/gogpu/gg"
)

// StarFrames is the number of frames in a generated star sheet.
const StarFrames = 10

// spaceContext paints a starfield backdrop.
func spaceContext(w, h int, seed int64) (*gg.Context, error) {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.RGB(0.01, 0.01, 0.05))

	rng := rand.New(rand.NewSource(seed))

	// Two faint nebulae
	for i := 0; i < 2; i++ {
		cx := rng.Float64() * float64(w)
		cy := rng.Float64() * float64(h)
		r := float64(min(w, h)) * (0.3 + 0.2*rng.Float64())
		dc.SetFillBrush(gg.NewRadialGradientBrush(cx, cy, 0, r).
			AddColorStop(0, gg.RGBA2(0.25, 0.1, 0.35, 0.45)).
			AddColorStop(1, gg.Transparent))
		dc.DrawCircle(cx, cy, r)
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("nebula: %w", err)
		}
	}

	// Distant stars
	count := w * h / 1500
	for i := 0; i < count; i++ {
		b := 0.4 + 0.6*rng.Float64()
		dc.SetRGBA(b, b, b*0.9+0.1, 0.5+0.5*rng.Float64())
		dc.DrawCircle(rng.Float64()*float64(w), rng.Float64()*float64(h), 0.5+rng.Float64())
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("starfield: %w", err)
		}
	}
	return dc, nil
}

// starSheetContext paints a horizontal strip of pulsing star frames.
// The frames are white so the game can tint them.
func starSheetContext(tileW, tileH, frames int) (*gg.Context, error) {
	dc := gg.NewContext(tileW*frames, tileH)

	for i := 0; i < frames; i++ {
		cx := float64(i*tileW) + float64(tileW)/2
		cy := float64(tileH) / 2
		phase := float64(i) / float64(frames) * 2 * math.Pi
		outer := float64(min(tileW, tileH)) / 2 * (0.75 + 0.2*math.Sin(phase))

		dc.SetFillBrush(gg.NewRadialGradientBrush(cx, cy, 0, outer).
			AddColorStop(0, gg.White).
			AddColorStop(0.35, gg.RGBA2(1, 1, 1, 0.6)).
			AddColorStop(1, gg.Transparent))
		dc.DrawCircle(cx, cy, outer)
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("star frame %d: %w", i, err)
		}

		// Four point sparkle turning with the phase
		dc.SetRGBA(1, 1, 1, 0.9)
		spike := outer * 0.95
		waist := outer * 0.15
		for k := 0; k < 4; k++ {
			a := phase/4 + float64(k)*math.Pi/2
			dc.MoveTo(cx+math.Sin(a)*spike, cy-math.Cos(a)*spike)
			dc.LineTo(cx+math.Sin(a+math.Pi/2)*waist, cy-math.Cos(a+math.Pi/2)*waist)
			dc.LineTo(cx, cy)
			dc.LineTo(cx+math.Sin(a-math.Pi/2)*waist, cy-math.Cos(a-math.Pi/2)*waist)
			dc.ClosePath()
		}
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("star sparkle %d: %w", i, err)
		}
	}
	return dc, nil
}

// shipContext paints a ship with its nose pointing up.
func shipContext(w, h int) (*gg.Context, error) {
	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)

	// Engine glow
	dc.SetFillBrush(gg.NewRadialGradientBrush(fw/2, fh*0.85, 0, fw*0.25).
		AddColorStop(0, gg.RGBA2(1, 0.7, 0.2, 0.9)).
		AddColorStop(1, gg.Transparent))
	dc.DrawCircle(fw/2, fh*0.85, fw*0.25)
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("engine: %w", err)
	}

	// Hull
	dc.SetRGB(0.75, 0.8, 0.9)
	dc.MoveTo(fw/2, fh*0.05)
	dc.LineTo(fw*0.9, fh*0.85)
	dc.LineTo(fw/2, fh*0.7)
	dc.LineTo(fw*0.1, fh*0.85)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("hull: %w", err)
	}

	// Cockpit
	dc.SetRGB(0.2, 0.55, 1)
	dc.DrawEllipse(fw/2, fh*0.4, fw*0.08, fh*0.12)
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("cockpit: %w", err)
	}
	return dc, nil
}

// snapshot copies the context pixels into an image the context no longer
// references, then releases the context.
func snapshot(dc *gg.Context) (*image.RGBA, error) {
	defer dc.Close()
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	src := dc.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst, nil
}

// GenerateSpace returns a procedural backdrop of the given size.
func GenerateSpace(w, h int, seed int64) (*image.RGBA, error) {
	dc, err := spaceContext(w, h, seed)
	if err != nil {
		return nil, fmt.Errorf("assets: generate background: %w", err)
	}
	return snapshot(dc)
}

// GenerateStarSheet returns a procedural sheet of StarFrames tiles.
func GenerateStarSheet(tileW, tileH int) (*image.RGBA, error) {
	dc, err := starSheetContext(tileW, tileH, StarFrames)
	if err != nil {
		return nil, fmt.Errorf("assets: generate star sheet: %w", err)
	}
	return snapshot(dc)
}

// GenerateShip returns a procedural ship sprite.
func GenerateShip(w, h int) (*image.RGBA, error) {
	dc, err := shipContext(w, h)
	if err != nil {
		return nil, fmt.Errorf("assets: generate ship: %w", err)
	}
	return snapshot(dc)
}
