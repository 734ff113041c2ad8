package core

import (
	"image"
	"sort"
)

// Sprite is a decoded image shared by the game and the platform renderers.
// Sprites are read-only once loaded; platforms key their GPU copies by pointer.
type Sprite struct {
	Name string
	Img  image.Image
}

// NewSprite wraps a decoded image.
func NewSprite(name string, img image.Image) *Sprite {
	return &Sprite{Name: name, Img: img}
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.Img.Bounds().Dx()
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.Img.Bounds().Dy()
}

// At returns the sprite color at the given local pixel.
// Outside the sprite the color is fully transparent.
func (s *Sprite) At(x, y int) Color {
	b := s.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return Color{}
	}
	return ColorFrom(s.Img.At(b.Min.X+x, b.Min.Y+y))
}

// Animation is an ordered frame sequence shared by many entities.
type Animation []*Sprite

// Frame returns the frame shown after elapsedMillis at frameMillis per frame.
func (a Animation) Frame(elapsedMillis, frameMillis int64) *Sprite {
	if len(a) == 0 {
		return nil
	}
	if frameMillis <= 0 {
		frameMillis = 1
	}
	if elapsedMillis < 0 {
		elapsedMillis = 0
	}
	return a[(elapsedMillis/frameMillis)%int64(len(a))]
}

// ZOrder is a draw layer. Lower layers are drawn first.
type ZOrder int

const (
	ZBackground ZOrder = iota
	ZStars
	ZPlayer
	ZUI
)

// BlendMode selects how a draw is composited onto what is below it.
type BlendMode int

const (
	BlendNormal   BlendMode = iota // Source-over alpha blending
	BlendAdditive                  // Source color added onto the destination
)

// DrawOp is one recorded draw call. Image ops have a Sprite; text ops have Text.
//
// For image ops, (X, Y) is where the anchor point of the sprite lands, the
// anchor being (AnchorX*w, AnchorY*h) in sprite pixels. The sprite is scaled
// by (ScaleX, ScaleY) and rotated by Angle radians around the anchor.
type DrawOp struct {
	Z       ZOrder
	Sprite  *Sprite
	Text    string
	X, Y    float64
	AnchorX float64
	AnchorY float64
	ScaleX  float64
	ScaleY  float64
	Angle   float64
	Color   Color
	Blend   BlendMode
	Size    float64 // Text size in logical pixels
}

// Canvas is a retained draw list. Games record into it; platforms replay it.
type Canvas struct {
	width  int
	height int
	ops    []DrawOp
}

// NewCanvas creates an empty canvas for a logical screen of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

// Width returns the logical screen width.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the logical screen height.
func (c *Canvas) Height() int {
	return c.height
}

// Reset drops all recorded ops, keeping the allocation.
func (c *Canvas) Reset() {
	c.ops = c.ops[:0]
}

// DrawImage records an unrotated blit with its top-left corner at (x, y).
func (c *Canvas) DrawImage(s *Sprite, x, y float64, z ZOrder, scaleX, scaleY float64, tint Color, blend BlendMode) {
	c.ops = append(c.ops, DrawOp{
		Z:      z,
		Sprite: s,
		X:      x,
		Y:      y,
		ScaleX: scaleX,
		ScaleY: scaleY,
		Color:  tint,
		Blend:  blend,
	})
}

// DrawRot records a blit centered on (x, y) and rotated by angle.
func (c *Canvas) DrawRot(s *Sprite, x, y float64, z ZOrder, angle float64) {
	c.ops = append(c.ops, DrawOp{
		Z:       z,
		Sprite:  s,
		X:       x,
		Y:       y,
		AnchorX: 0.5,
		AnchorY: 0.5,
		ScaleX:  1,
		ScaleY:  1,
		Angle:   angle,
		Color:   ColorWhite,
	})
}

// DrawText records a line of text with its top-left corner at (x, y).
func (c *Canvas) DrawText(text string, x, y float64, z ZOrder, size float64, col Color) {
	c.ops = append(c.ops, DrawOp{
		Z:      z,
		Text:   text,
		X:      x,
		Y:      y,
		ScaleX: 1,
		ScaleY: 1,
		Color:  col,
		Size:   size,
	})
}

// Ops returns the recorded ops ordered by layer. Ops on the same layer keep
// the order they were recorded in.
func (c *Canvas) Ops() []DrawOp {
	out := make([]DrawOp, len(c.ops))
	copy(out, c.ops)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Z < out[j].Z
	})
	return out
}

// Len returns the number of recorded ops.
func (c *Canvas) Len() int {
	return len(c.ops)
}

// Sound is a one-shot audio cue.
type Sound interface {
	Play()
}
