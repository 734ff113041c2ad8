// Package assets loads the game media, generating stand-ins for missing files.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // PNG decoder for image.Decode
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp" // BMP decoder for image.Decode

	"github.com/indspenceable/gosu/internal/config"
	"github.com/indspenceable/gosu/internal/core"
	"github.com/indspenceable/gosu/internal/games/stars"
)

// Ship sprite size used when no ship image is found.
const (
	ShipW = 50
	ShipH = 50
)

// Library holds the decoded images the game draws with.
type Library struct {
	Background *core.Sprite
	Star       core.Animation
	Ship       *core.Sprite

	// Generated lists the configured files that were missing and replaced.
	Generated []string
}

// Load decodes the background, star sheet and ship from cfg.Dir.
// A missing file is replaced by a generated image of the same role; a file
// that exists but cannot be decoded is an error.
func Load(cfg config.AssetsConfig, screenW, screenH int, logger *log.Logger) (*Library, error) {
	lib := &Library{}

	bg, err := lib.image(cfg.Dir, cfg.Background, logger, func() (image.Image, error) {
		return GenerateSpace(screenW, screenH, 1)
	})
	if err != nil {
		return nil, err
	}
	lib.Background = core.NewSprite(cfg.Background, bg)

	sheet, err := lib.image(cfg.Dir, cfg.StarSheet, logger, func() (image.Image, error) {
		return GenerateStarSheet(cfg.TileW, cfg.TileH)
	})
	if err != nil {
		return nil, err
	}
	lib.Star, err = Tiles(cfg.StarSheet, sheet, cfg.TileW, cfg.TileH)
	if err != nil {
		return nil, err
	}

	ship, err := lib.image(cfg.Dir, cfg.Player, logger, func() (image.Image, error) {
		return GenerateShip(ShipW, ShipH)
	})
	if err != nil {
		return nil, err
	}
	lib.Ship = core.NewSprite(cfg.Player, ship)

	logger.Debug("assets loaded",
		"dir", cfg.Dir,
		"star_frames", len(lib.Star),
		"generated", len(lib.Generated),
	)
	return lib, nil
}

func (l *Library) image(dir, name string, logger *log.Logger, generate func() (image.Image, error)) (image.Image, error) {
	path := filepath.Join(dir, name)
	img, err := DecodeFile(path)
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	logger.Warn("media file missing, using generated image", "path", path)
	img, err = generate()
	if err != nil {
		return nil, err
	}
	l.Generated = append(l.Generated, name)
	return img, nil
}

// GameAssets bundles the library with a sound cue for the game.
func (l *Library) GameAssets(cue core.Sound) stars.Assets {
	return stars.Assets{
		Background: l.Background,
		Star:       l.Star,
		Ship:       l.Ship,
		Cue:        cue,
	}
}

// DecodeFile decodes a PNG or BMP image.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to decode %s: %w", path, err)
	}
	if format == "bmp" {
		// BMP has no alpha channel; treat pure magenta as transparent
		img = keyOut(img, core.RGB(0xff, 0x00, 0xff))
	}
	return img, nil
}

// keyOut returns a copy of img with every pixel of the key color cleared.
func keyOut(img image.Image, key core.Color) image.Image {
	out := toRGBA(img)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if core.ColorFrom(out.At(x, y)) == key {
				out.Set(x, y, color.Transparent)
			}
		}
	}
	return out
}

func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}
