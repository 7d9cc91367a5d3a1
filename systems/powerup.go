package systems

import (
	"math"

	"github.com/Caizj-lg/block-breaker-game/components"
	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/engine"
	"github.com/Caizj-lg/block-breaker-game/events"
	"github.com/Caizj-lg/block-breaker-game/vmath"
)

// SplitBalls replaces every free ball with two copies rotated by -SplitAngle and +SplitAngle
// Attached balls pass through unchanged, order is kept
func SplitBalls(balls []components.Ball) []components.Ball {
	out := make([]components.Ball, 0, len(balls)*2)
	for _, b := range balls {
		if b.Attached {
			out = append(out, b)
			continue
		}
		left, right := b, b
		left.DX, left.DY = vmath.Rotate(b.DX, b.DY, -constants.SplitAngle)
		right.DX, right.DY = vmath.Rotate(b.DX, b.DY, constants.SplitAngle)
		out = append(out, left, right)
	}
	return out
}

// ScatterBalls appends ScatterBallCount free balls fanned upward from the paddle center
func ScatterBalls(w *engine.World, speed float64) {
	x := w.Paddle.Center()
	y := w.PaddleY - w.BallRadius - constants.AttachedBallGap
	for i := 0; i < constants.ScatterBallCount; i++ {
		angle := -math.Pi/2 + constants.ScatterSpread*float64(i-constants.ScatterBallCount/2)
		dx, dy := vmath.FromAngle(angle, speed)
		w.Balls = append(w.Balls, components.Ball{X: x, Y: y, DX: dx, DY: dy})
	}
}

// ActivatePowerUp applies a caught item to the world and returns its pickup effect
func ActivatePowerUp(w *engine.World, item components.Item, ballSpeed float64, pcfg config.Particles, rng *vmath.FastRand) events.Effect {
	switch item.Type {
	case components.ItemSplit:
		w.Balls = SplitBalls(w.Balls)
	case components.ItemScatter:
		ScatterBalls(w, ballSpeed)
	}

	color := item.Type.Color()
	w.Particles = SpawnScatterBurst(w.Particles, item.X, item.Y, color, constants.PickupBurstCount, pcfg, rng)
	return events.Effect{
		Kind:  events.EffectParticleBurst,
		X:     item.X,
		Y:     item.Y,
		Color: color,
		Count: constants.PickupBurstCount,
	}
}
