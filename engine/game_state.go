package engine

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/Caizj-lg/block-breaker-game/engine/fsm"
	"github.com/Caizj-lg/block-breaker-game/events"
)

// State names as declared in game.toml
const (
	StateMenu     = "menu"
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateLevelUp  = "levelup"
)

//go:embed game.toml
var gameFSMConfig string

// registerGameComponents binds the actions and guards referenced by game.toml
func registerGameComponents(m *fsm.Machine[*Game]) {
	// --- ACTIONS ---

	// ResetSession: level 1, full lives, zero score, fresh layout
	m.RegisterAction("ResetSession", func(g *Game, _ map[string]any) {
		g.resetSession()
	})

	// NextLevel: level+1 keeping score and lives
	m.RegisterAction("NextLevel", func(g *Game, _ map[string]any) {
		g.nextLevel()
	})

	m.RegisterAction("ResumeClock", func(g *Game, _ map[string]any) {
		g.notifyClock(true)
	})

	m.RegisterAction("PauseClock", func(g *Game, _ map[string]any) {
		g.notifyClock(false)
	})

	// Log: Args: msg (string)
	m.RegisterAction("Log", func(g *Game, args map[string]any) {
		msg, _ := args["msg"].(string)
		log.Printf("%s: level %d score %d lives %d", msg, g.world.Level, g.world.Score, g.world.Lives)
	})

	// --- GUARD FACTORIES ---

	// OutcomeIs: true when the last simulation step reported the outcome
	// Args: outcome (string: gameover|levelup)
	m.RegisterGuardFactory("OutcomeIs", func(_ *fsm.Machine[*Game], args map[string]any) (fsm.GuardFunc[*Game], error) {
		name, _ := args["outcome"].(string)
		want, ok := events.ParseOutcome(name)
		if !ok || want == events.OutcomeNone {
			return nil, fmt.Errorf("unknown outcome %q", name)
		}
		return func(g *Game) bool {
			return g.outcome == want
		}, nil
	})
}
