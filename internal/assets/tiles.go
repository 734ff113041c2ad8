package assets

import (
	"errors"
	"fmt"
	"image"

	"github.com/indspenceable/gosu/internal/core"
)

// ErrNoTiles is returned when a sheet is smaller than a single tile.
var ErrNoTiles = errors.New("assets: sheet holds no complete tile")

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Tiles cuts a sheet into tileW×tileH frames, left to right then top to
// bottom. Partial tiles at the right and bottom edges are dropped.
func Tiles(name string, sheet image.Image, tileW, tileH int) (core.Animation, error) {
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("assets: %s: tile size %dx%d: %w", name, tileW, tileH, ErrNoTiles)
	}

	b := sheet.Bounds()
	cols := b.Dx() / tileW
	rows := b.Dy() / tileH
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("assets: %s: %dx%d sheet, %dx%d tiles: %w", name, b.Dx(), b.Dy(), tileW, tileH, ErrNoTiles)
	}

	src, ok := sheet.(subImager)
	if !ok {
		src = toRGBA(sheet)
	}

	anim := make(core.Animation, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := image.Rect(col*tileW, row*tileH, (col+1)*tileW, (row+1)*tileH).Add(b.Min)
			frame := src.SubImage(r)
			anim = append(anim, core.NewSprite(fmt.Sprintf("%s#%d", name, len(anim)), frame))
		}
	}
	return anim, nil
}
