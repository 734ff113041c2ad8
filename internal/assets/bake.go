package assets

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/indspenceable/gosu/internal/config"
)

// Bake writes the generated media into dir under the configured names, so a
// fresh checkout can be given real files to edit. It returns the written paths.
func Bake(dir string, cfg config.AssetsConfig, screenW, screenH int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("assets: failed to create %s: %w", dir, err)
	}

	var written []string

	bg, err := spaceContext(screenW, screenH, 1)
	if err != nil {
		return nil, fmt.Errorf("assets: generate background: %w", err)
	}
	path, err := savePNG(bg, dir, cfg.Background)
	if err != nil {
		return nil, err
	}
	written = append(written, path)

	sheet, err := starSheetContext(cfg.TileW, cfg.TileH, StarFrames)
	if err != nil {
		return nil, fmt.Errorf("assets: generate star sheet: %w", err)
	}
	path, err = savePNG(sheet, dir, cfg.StarSheet)
	if err != nil {
		return nil, err
	}
	written = append(written, path)

	path, err = saveShip(dir, cfg.Player)
	if err != nil {
		return nil, err
	}
	written = append(written, path)

	return written, nil
}

var magenta = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

type pngSaver interface {
	SavePNG(path string) error
	Close() error
}

func savePNG(dc pngSaver, dir, name string) (string, error) {
	defer dc.Close()
	path := filepath.Join(dir, name)
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("assets: failed to write %s: %w", path, err)
	}
	return path, nil
}

// saveShip writes the ship as BMP when the configured name asks for one,
// keying the transparent background to magenta; otherwise as PNG.
func saveShip(dir, name string) (string, error) {
	if !strings.EqualFold(filepath.Ext(name), ".bmp") {
		dc, err := shipContext(ShipW, ShipH)
		if err != nil {
			return "", fmt.Errorf("assets: generate ship: %w", err)
		}
		return savePNG(dc, dir, name)
	}

	img, err := GenerateShip(ShipW, ShipH)
	if err != nil {
		return "", err
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A < 0x80 {
				img.Set(x, y, magenta)
			} else {
				c := img.RGBAAt(x, y)
				c.A = 0xff
				img.SetRGBA(x, y, c)
			}
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("assets: failed to create %s: %w", path, err)
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("assets: failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("assets: failed to write %s: %w", path, err)
	}
	return path, nil
}
