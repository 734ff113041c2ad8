package stars

import (
	"slices"

	"github.com/indspenceable/gosu/internal/config"
	"github.com/indspenceable/gosu/internal/core"
)

// Player is the ship steered toward the pointer.
// Heading is in radians, 0 pointing up and growing clockwise.
type Player struct {
	cfg    config.PlayerConfig
	sprite *core.Sprite
	cue    core.Sound

	x, y   float64
	vx, vy float64
	angle  float64
	score  uint
}

// NewPlayer creates a player at the origin with a zero score.
// cue may be nil, in which case collecting is silent.
func NewPlayer(cfg config.PlayerConfig, sprite *core.Sprite, cue core.Sound) *Player {
	return &Player{cfg: cfg, sprite: sprite, cue: cue}
}

// Score returns the points collected so far.
func (p *Player) Score() uint {
	return p.score
}

// Warp moves the player without touching its velocity.
func (p *Player) Warp(x, y float64) {
	p.x, p.y = x, y
}

// Position returns the ship center.
func (p *Player) Position() (x, y float64) {
	return p.x, p.y
}

// Velocity returns the current velocity per tick.
func (p *Player) Velocity() (vx, vy float64) {
	return p.vx, p.vy
}

// Angle returns the heading in radians.
func (p *Player) Angle() float64 {
	return p.angle
}

// RotateTowards turns a fraction of the way toward the bearing of (x, y),
// always along the shorter arc.
func (p *Player) RotateTowards(x, y float64) {
	target := core.Bearing(p.x, p.y, x, y)
	p.angle += p.cfg.TurnBlend * core.AngleDiff(p.angle, target)
}

// Accelerate adds one thrust impulse along the heading.
func (p *Player) Accelerate() {
	dx, dy := core.Offset(p.angle, p.cfg.Thrust)
	p.vx += dx
	p.vy += dy
}

// Move integrates position and then applies drag.
func (p *Player) Move() {
	p.x += p.vx
	p.y += p.vy

	p.vx *= p.cfg.Damping
	p.vy *= p.cfg.Damping
}

// CollectStars removes every star inside the collect radius, scoring and
// playing the cue once per star. The survivors keep their order.
func (p *Player) CollectStars(stars []*Star) []*Star {
	return slices.DeleteFunc(stars, func(s *Star) bool {
		if core.Distance(p.x, p.y, s.X(), s.Y()) >= p.cfg.CollectRadius {
			return false
		}
		p.score += p.cfg.StarPoints
		if p.cue != nil {
			p.cue.Play()
		}
		return true
	})
}

// Draw records the ship rotated to its heading.
func (p *Player) Draw(c *core.Canvas) {
	if p.sprite == nil {
		return
	}
	c.DrawRot(p.sprite, p.x, p.y, core.ZPlayer, p.angle)
}
