package common

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether r and other share a non-zero area. Edges that
// merely touch do not count.
func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Overlaps is the nil-safe form of Intersects. A missing box never overlaps.
func Overlaps(a, b *Rect) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Intersects(b)
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
