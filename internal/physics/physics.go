// Package physics provides vector math and collision detection utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Length returns the magnitude of the vector (x, y).
func Length(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Direction returns the unit vector pointing from (x1,y1) to (x2,y2) and the
// distance between the points. ok is false when the points coincide, in which
// case the direction is (0, 0) and must not be used.
func Direction(x1, y1, x2, y2 float64) (dirX, dirY, dist float64, ok bool) {
	dx := x2 - x1
	dy := y2 - y1
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist == 0 || !Finite(dist) {
		return 0, 0, dist, false
	}
	return dx / dist, dy / dist, dist, true
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
