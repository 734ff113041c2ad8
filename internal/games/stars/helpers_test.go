package stars

import (
	"image"
	"image/color"

	"github.com/indspenceable/gosu/internal/config"
	"github.com/indspenceable/gosu/internal/core"
)

type countingCue struct {
	plays int
}

func (c *countingCue) Play() {
	c.plays++
}

func testSprite(name string, w, h int, c color.Color) *core.Sprite {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return core.NewSprite(name, img)
}

func testAssets(cue core.Sound) Assets {
	return Assets{
		Background: testSprite("bg", 64, 48, color.RGBA{0, 0, 40, 255}),
		Star: core.Animation{
			testSprite("star0", 25, 25, color.RGBA{255, 255, 255, 255}),
			testSprite("star1", 25, 25, color.RGBA{200, 200, 200, 255}),
			testSprite("star2", 25, 25, color.RGBA{150, 150, 150, 255}),
		},
		Ship: testSprite("ship", 50, 50, color.RGBA{0, 255, 0, 255}),
		Cue:  cue,
	}
}

func newTestGame(seed int64, cue core.Sound) *Game {
	g := New(config.Default(), testAssets(cue))
	g.Reset(core.RuntimeConfig{
		ScreenW:  1024,
		ScreenH:  768,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}
