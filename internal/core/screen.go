package core

import (
	"strings"
)

// HalfBlock is the glyph used for pixel cells: the foreground paints the top
// half of the cell and the background paints the bottom half.
const HalfBlock = '▀'

// Cell is one terminal character with its colors.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a 2D character buffer used by the terminal renderer.
// Each cell doubles as two vertically stacked pixels, so a screen of
// width x height cells holds width x 2*height pixels.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// PixelHeight returns the number of pixel rows, two per cell.
func (s *Screen) PixelHeight() int {
	return s.height * 2
}

// Resize changes the screen dimensions. Content is cleared.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with black pixel cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: HalfBlock, FG: ColorBlack, BG: ColorBlack}
		}
	}
}

// Set places a rune at the given position, keeping the cell colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// SetPixel colors one half-block pixel. py counts pixel rows, two per cell.
func (s *Screen) SetPixel(px, py int, c Color) {
	if px < 0 || px >= s.width || py < 0 || py >= s.height*2 {
		return
	}
	cell := &s.cells[py/2][px]
	cell.Rune = HalfBlock
	if py%2 == 0 {
		cell.FG = c
	} else {
		cell.BG = c
	}
}

// Pixel returns the color of one half-block pixel.
func (s *Screen) Pixel(px, py int) Color {
	if px < 0 || px >= s.width || py < 0 || py >= s.height*2 {
		return Color{}
	}
	cell := s.cells[py/2][px]
	if py%2 == 0 {
		return cell.FG
	}
	return cell.BG
}

// DrawText writes a string horizontally starting at (x, y) in the given color.
// Text cells take the average of the pixels below them as background.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	if y < 0 || y >= s.height {
		return
	}
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if cx < 0 || cx >= s.width {
			continue
		}
		cell := &s.cells[y][cx]
		cell.BG = average(cell.FG, cell.BG)
		cell.FG = fg
		cell.Rune = r
	}
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*3 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func average(a, b Color) Color {
	return Color{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: 0xff,
	}
}
