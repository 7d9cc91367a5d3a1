package events

import "github.com/Caizj-lg/block-breaker-game/components"

// EffectKind identifies a render-facing effect emitted by the simulation step
type EffectKind int

const (
	// EffectParticleBurst marks particles spawned at (X, Y)
	EffectParticleBurst EffectKind = iota
)

func (k EffectKind) String() string {
	switch k {
	case EffectParticleBurst:
		return "particle-burst"
	default:
		return "unknown"
	}
}

// Effect is a render event produced during one tick
// Particles themselves are already in the world snapshot; effects let adapters react (flash, sound hooks)
type Effect struct {
	Kind  EffectKind
	X, Y  float64
	Color components.Color
	Count int
}

// Outcome is the terminal condition reported by a tick, at most one per tick
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeLevelUp
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGameOver:
		return "gameover"
	case OutcomeLevelUp:
		return "levelup"
	default:
		return "none"
	}
}

// ParseOutcome resolves an outcome name as written in FSM guard arguments
func ParseOutcome(name string) (Outcome, bool) {
	switch name {
	case "gameover":
		return OutcomeGameOver, true
	case "levelup":
		return OutcomeLevelUp, true
	case "none", "":
		return OutcomeNone, true
	default:
		return OutcomeNone, false
	}
}
