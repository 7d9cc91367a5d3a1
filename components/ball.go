package components

// Ball is a single ball in play
// Attached balls rest on the paddle with zero velocity and follow its center
type Ball struct {
	X, Y   float64
	DX, DY float64

	Attached bool
}

// Free reports whether the ball moves under physics
func (b *Ball) Free() bool {
	return !b.Attached
}
