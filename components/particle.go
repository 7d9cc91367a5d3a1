package components

// Particle is a cosmetic spark with no gameplay effect
type Particle struct {
	X, Y   float64
	DX, DY float64

	Life    int
	MaxLife int

	Color Color
}

// Alpha returns remaining life as a fade factor in [0, 1]
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := float64(p.Life) / float64(p.MaxLife)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
