package systems

import (
	"math"
	"testing"

	"github.com/Caizj-lg/block-breaker-game/components"
	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/engine"
	"github.com/Caizj-lg/block-breaker-game/events"
	"github.com/Caizj-lg/block-breaker-game/vmath"
)

const epsilon = 1e-9

// newTestSystem returns a physics system with drops disabled unless the caller re-enables them
func newTestSystem(t *testing.T, mutate func(*config.Config)) (*PhysicsSystem, *engine.World) {
	t.Helper()
	cfg := config.Default()
	cfg.Items.DropChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	w := engine.NewWorld(cfg)
	// Far corner block keeps the level from completing during isolated tests
	w.Blocks = []components.Block{sentinelBlock()}
	w.Balls = nil
	return NewPhysicsSystem(cfg, vmath.NewFastRand(1)), w
}

func sentinelBlock() components.Block {
	return components.Block{X: 400, Y: 60, Width: 36, Height: 16, Hits: 1}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func countFree(balls []components.Ball) int {
	n := 0
	for _, b := range balls {
		if !b.Attached {
			n++
		}
	}
	return n
}

func countEffects(res engine.StepResult, color components.Color, count int) int {
	n := 0
	for _, e := range res.Effects {
		if e.Kind == events.EffectParticleBurst && e.Color == color && e.Count == count {
			n++
		}
	}
	return n
}
