// Package object defines the simulation entities and their per-frame behavior.
package object

import "math"

// Bounds is the rectangular play area. The origin is the top-left corner.
type Bounds struct {
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the play area, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// Center returns the middle of the play area.
func (b Bounds) Center() (float64, float64) {
	return b.Width / 2, b.Height / 2
}

// Intent is the directional movement intent for one frame.
// Each axis is -1, 0 or 1 (up and left are negative).
type Intent struct {
	X, Y float64
}

// IntentFromKeys combines four independent direction keys into an intent.
// Opposite keys cancel out.
func IntentFromKeys(up, down, left, right bool) Intent {
	var in Intent
	if up {
		in.Y--
	}
	if down {
		in.Y++
	}
	if left {
		in.X--
	}
	if right {
		in.X++
	}
	return in
}

// IsZero reports whether the intent requests no movement.
func (in Intent) IsZero() bool {
	return axis(in.X) == 0 && axis(in.Y) == 0
}

// Vector returns the intent as a direction vector. Diagonals are scaled by
// sqrt(2)/2 so they have the same length as a single axis.
func (in Intent) Vector() (x, y float64) {
	x, y = axis(in.X), axis(in.Y)
	if x != 0 && y != 0 {
		norm := math.Sqrt2 / 2
		x *= norm
		y *= norm
	}
	return x, y
}

// axis reduces an axis value to its sign; NaN counts as no input.
func axis(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Destructible is implemented by entities that can be removed from the world.
type Destructible interface {
	// MarkDestroyed marks the entity as removed. It takes no further part in the frame.
	MarkDestroyed()
	// IsDestroyed returns true if the entity has been removed.
	IsDestroyed() bool
}
