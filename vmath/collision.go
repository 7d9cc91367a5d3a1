package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the rectangle midpoint
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// CircleRectOverlap reports whether circle (cx, cy, radius) intersects r
// Touching edges do not count as overlap
func CircleRectOverlap(cx, cy, radius float64, r Rect) bool {
	closestX := Clamp(cx, r.X, r.X+r.Width)
	closestY := Clamp(cy, r.Y, r.Y+r.Height)
	distX := cx - closestX
	distY := cy - closestY
	return distX*distX+distY*distY < radius*radius
}

// Penetration holds how deep a circle reaches past each side of a rectangle
type Penetration struct {
	Left, Right, Top, Bottom float64
}

// MinX returns the shallower horizontal penetration
func (p Penetration) MinX() float64 { return min(p.Left, p.Right) }

// MinY returns the shallower vertical penetration
func (p Penetration) MinY() float64 { return min(p.Top, p.Bottom) }

// Penetrations measures circle (cx, cy, radius) against the four sides of r
func Penetrations(cx, cy, radius float64, r Rect) Penetration {
	return Penetration{
		Left:   cx + radius - r.X,
		Right:  r.X + r.Width - (cx - radius),
		Top:    cy + radius - r.Y,
		Bottom: r.Y + r.Height - (cy - radius),
	}
}

// ResolveBounce returns the velocity after a circle hits r
// The component on the axis of least penetration is inverted; equal depths invert dy
func ResolveBounce(cx, cy, dx, dy, radius float64, r Rect) (float64, float64) {
	p := Penetrations(cx, cy, radius, r)
	if p.MinX() < p.MinY() {
		return -dx, dy
	}
	return dx, -dy
}
