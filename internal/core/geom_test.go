package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(500, 500, 510, 500); math.Abs(d-10) > eps {
		t.Errorf("Distance = %f, expected 10", d)
	}
	if d := Distance(0, 0, 3, 4); math.Abs(d-5) > eps {
		t.Errorf("Distance = %f, expected 5", d)
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"up", 0, -10, 0},
		{"right", 10, 0, math.Pi / 2},
		{"down", 0, 10, math.Pi},
		{"left", -10, 0, -math.Pi / 2},
		{"same point", 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Bearing(0, 0, tc.x, tc.y)
			if math.Abs(AngleDiff(got, tc.expected)) > eps {
				t.Errorf("Bearing(0, 0, %v, %v) = %f, expected %f", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{0, math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, 0, -math.Pi / 2},
		// Shortest way across the wrap point
		{math.Pi * 0.9, -math.Pi * 0.9, math.Pi * 0.2},
		{-math.Pi * 0.9, math.Pi * 0.9, -math.Pi * 0.2},
		{0, 4 * math.Pi, 0},
	}

	for _, tc := range tests {
		got := AngleDiff(tc.a, tc.b)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("AngleDiff(%f, %f) = %f, expected %f", tc.a, tc.b, got, tc.expected)
		}
		if got < -math.Pi || got >= math.Pi {
			t.Errorf("AngleDiff(%f, %f) = %f, outside [-Pi, Pi)", tc.a, tc.b, got)
		}
	}
}

func TestOffset(t *testing.T) {
	dx, dy := Offset(0, 0.5)
	if math.Abs(dx) > eps || math.Abs(dy+0.5) > eps {
		t.Errorf("Offset(0, 0.5) = (%f, %f), expected (0, -0.5)", dx, dy)
	}

	dx, dy = Offset(math.Pi/2, 2)
	if math.Abs(dx-2) > eps || math.Abs(dy) > eps {
		t.Errorf("Offset(Pi/2, 2) = (%f, %f), expected (2, 0)", dx, dy)
	}

	// Offset and Bearing agree
	for _, angle := range []float64{0.3, 1.7, -2.2, 3} {
		dx, dy := Offset(angle, 10)
		if b := Bearing(0, 0, dx, dy); math.Abs(AngleDiff(b, angle)) > 1e-9 {
			t.Errorf("Bearing(Offset(%f)) = %f", angle, b)
		}
	}
}
