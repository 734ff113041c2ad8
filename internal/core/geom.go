// Package core provides fundamental types and utilities for the tutorial game.
// It contains no external dependencies (especially no Ebitengine or Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Angles are in radians. Zero points up the screen and angles grow clockwise,
// which matches screen coordinates where y grows downwards.

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Bearing returns the angle from (x1, y1) towards (x2, y2).
// Coincident points have no direction; Bearing returns 0 for them.
func Bearing(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dx, -dy)
}

// AngleDiff returns the signed shortest rotation from a to b, in [-Pi, Pi).
func AngleDiff(a, b float64) float64 {
	d := math.Mod(b-a+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}

// Offset returns the vector of the given length pointing along angle.
func Offset(angle, length float64) (dx, dy float64) {
	return math.Sin(angle) * length, -math.Cos(angle) * length
}
