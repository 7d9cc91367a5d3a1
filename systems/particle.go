package systems

import (
	"math"

	"github.com/Caizj-lg/block-breaker-game/components"
	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/vmath"
)

// SpawnBurst appends count particles radiating evenly from (x, y)
// Used for block explosions and paddle/wall sparks
func SpawnBurst(ps []components.Particle, x, y float64, color components.Color, count int, cfg config.Particles, rng *vmath.FastRand) []components.Particle {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := constants.BurstMinSpeed + rng.Float64()*constants.BurstSpeedRange
		dx, dy := vmath.FromAngle(angle, speed)
		ps = append(ps, components.Particle{
			X:       x,
			Y:       y,
			DX:      dx,
			DY:      dy,
			Life:    cfg.BurstLife,
			MaxLife: cfg.BurstLife,
			Color:   color,
		})
	}
	return ps
}

// SpawnScatterBurst appends count particles with jittered positions and small random velocities
// Used for item pickups
func SpawnScatterBurst(ps []components.Particle, x, y float64, color components.Color, count int, cfg config.Particles, rng *vmath.FastRand) []components.Particle {
	j := constants.ScatterJitter
	for i := 0; i < count; i++ {
		ps = append(ps, components.Particle{
			X:       x + rng.RangeF(-j, j),
			Y:       y + rng.RangeF(-j, j),
			DX:      rng.RangeF(-1, 1),
			DY:      rng.RangeF(-1, 1),
			Life:    cfg.ScatterLife,
			MaxLife: cfg.ScatterLife,
			Color:   color,
		})
	}
	return ps
}

// UpdateParticles integrates and ages every particle, dropping expired ones in place
func UpdateParticles(ps []components.Particle, gravity float64) []components.Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.X += p.DX
		p.Y += p.DY
		p.DY += gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	clear(ps[len(alive):])
	return alive
}
