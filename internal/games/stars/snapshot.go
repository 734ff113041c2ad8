package stars

// StarSnapshot captures one live star.
type StarSnapshot struct {
	X, Y    float64
	R, G, B uint8
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Score  uint
	X, Y   float64
	VX, VY float64
	Angle  float64
	Stars  []StarSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.tick,
		Score: g.player.score,
		X:     g.player.x,
		Y:     g.player.y,
		VX:    g.player.vx,
		VY:    g.player.vy,
		Angle: g.player.angle,
	}
	for _, s := range g.stars {
		snap.Stars = append(snap.Stars, StarSnapshot{
			X: s.x,
			Y: s.y,
			R: s.tint.R,
			G: s.tint.G,
			B: s.tint.B,
		})
	}
	return snap
}
