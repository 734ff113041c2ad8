package core

import "image/color"

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Predefined colors for game elements.
var (
	ColorWhite  = RGB(0xff, 0xff, 0xff)
	ColorBlack  = RGB(0x00, 0x00, 0x00)
	ColorYellow = RGB(0xff, 0xff, 0x00)
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ColorFrom converts any color.Color to a Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Modulate multiplies two colors channel by channel, like a tinted blit.
func (c Color) Modulate(o Color) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(o.R) / 0xff),
		G: uint8(uint16(c.G) * uint16(o.G) / 0xff),
		B: uint8(uint16(c.B) * uint16(o.B) / 0xff),
		A: uint8(uint16(c.A) * uint16(o.A) / 0xff),
	}
}

// Add composites src onto c additively, weighting src by its alpha.
func (c Color) Add(src Color) Color {
	return Color{
		R: addChannel(c.R, src.R, src.A),
		G: addChannel(c.G, src.G, src.A),
		B: addChannel(c.B, src.B, src.A),
		A: c.A,
	}
}

// Over composites src onto c with ordinary alpha blending.
func (c Color) Over(src Color) Color {
	a := uint16(src.A)
	inv := 0xff - a
	return Color{
		R: uint8((uint16(src.R)*a + uint16(c.R)*inv) / 0xff),
		G: uint8((uint16(src.G)*a + uint16(c.G)*inv) / 0xff),
		B: uint8((uint16(src.B)*a + uint16(c.B)*inv) / 0xff),
		A: c.A,
	}
}

func addChannel(dst, src, alpha uint8) uint8 {
	v := uint16(dst) + uint16(src)*uint16(alpha)/0xff
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}
