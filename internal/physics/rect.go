package physics

// Rect is an axis-aligned bounding box. X and Y are the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround returns the box of the given size centered on (cx, cy).
func RectAround(cx, cy, width, height float64) Rect {
	return Rect{
		X:      cx - width/2,
		Y:      cy - height/2,
		Width:  width,
		Height: height,
	}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Intersects reports whether two boxes overlap. Boxes that only touch along an
// edge count as overlapping; boxes with no area never overlap anything.
func (r Rect) Intersects(o Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	return !(r.Right() < o.X || r.Bottom() < o.Y || r.X > o.Right() || r.Y > o.Bottom())
}

// Contains reports whether the point lies inside the box, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}
