package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/engine/fsm"
	"github.com/Caizj-lg/block-breaker-game/events"
)

// Game owns one session: the world, the rule set and the state machine
// All methods are safe for concurrent use; input is buffered and applied at the next tick
type Game struct {
	mu sync.Mutex

	cfg   config.Config
	sim   Simulation
	world *World
	fsm   *fsm.Machine[*Game]

	tickInterval time.Duration

	// outcome of the step being evaluated by tick transitions
	outcome events.Outcome

	// Paddle input, a clamped left edge
	paddleTarget float64
	hasTarget    bool

	// Effects not yet handed out by Snapshot
	effects []events.Effect

	clockHook func(running bool)
}

// NewGame creates a session in the menu state with the first level laid out
func NewGame(cfg config.Config, sim Simulation) (*Game, error) {
	events.InitRegistry()

	g := &Game{
		cfg:          cfg,
		sim:          sim,
		world:        NewWorld(cfg),
		fsm:          fsm.NewMachine[*Game](),
		tickInterval: cfg.TickInterval(),
	}

	registerGameComponents(g.fsm)
	if err := g.fsm.LoadConfig([]byte(gameFSMConfig)); err != nil {
		return nil, fmt.Errorf("failed to load game FSM: %w", err)
	}
	g.fsm.OnTransition = func(from, to string) {
		log.Printf("state %s -> %s", from, to)
	}

	// Menu shows the first layout behind the overlay
	g.resetSession()

	if err := g.fsm.Init(g); err != nil {
		return nil, fmt.Errorf("failed to init game FSM: %w", err)
	}
	return g, nil
}

// SetClockHook registers the callback that follows the playing state
// It is invoked immediately with the current state and then on every enter/exit of playing
func (g *Game) SetClockHook(fn func(running bool)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clockHook = fn
	g.notifyClock(g.fsm.CurrentStateName() == StatePlaying)
}

func (g *Game) notifyClock(running bool) {
	if g.clockHook != nil {
		g.clockHook(running)
	}
}

// State returns the active state name
func (g *Game) State() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fsm.CurrentStateName()
}

// Dispatch routes a command; EventLaunch is handled directly, others go through the FSM
// Returns true if the command changed anything
func (g *Game) Dispatch(et events.EventType) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if et == events.EventLaunch {
		return g.launchLocked()
	}
	return g.fsm.HandleEvent(g, et)
}

func (g *Game) Start() bool    { return g.Dispatch(events.EventStart) }
func (g *Game) Restart() bool  { return g.Dispatch(events.EventRestart) }
func (g *Game) Continue() bool { return g.Dispatch(events.EventContinue) }
func (g *Game) Pause() bool    { return g.Dispatch(events.EventPause) }
func (g *Game) Resume() bool   { return g.Dispatch(events.EventResume) }
func (g *Game) Launch() bool   { return g.Dispatch(events.EventLaunch) }

// Confirm performs the context action of the confirm key: start, restart or continue
func (g *Game) Confirm() bool {
	switch g.State() {
	case StateMenu:
		return g.Start()
	case StateGameOver:
		return g.Restart()
	case StateLevelUp:
		return g.Continue()
	default:
		return false
	}
}

// TogglePause flips between playing and paused
func (g *Game) TogglePause() bool {
	if g.State() == StatePaused {
		return g.Resume()
	}
	return g.Pause()
}

func (g *Game) launchLocked() bool {
	if g.fsm.CurrentStateName() != StatePlaying {
		return false
	}
	return g.sim.Launch(g.world)
}

// SetPaddleTarget sets the paddle left edge applied at the next tick
func (g *Game) SetPaddleTarget(x float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paddleTarget = g.world.ClampPaddle(x)
	g.hasTarget = true
}

// SetPaddleCenter positions the paddle so its middle is at x, as pointer input does
func (g *Game) SetPaddleCenter(x float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paddleTarget = g.world.ClampPaddle(x - g.world.Paddle.Width/2)
	g.hasTarget = true
}

// NudgePaddle moves the pending paddle target by dx
func (g *Game) NudgePaddle(dx float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	base := g.world.Paddle.X
	if g.hasTarget {
		base = g.paddleTarget
	}
	g.paddleTarget = g.world.ClampPaddle(base + dx)
	g.hasTarget = true
}

// Tick runs one simulation step and lets the FSM react to its outcome
// No-op unless playing
func (g *Game) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.fsm.CurrentStateName() != StatePlaying {
		return
	}

	x := g.world.Paddle.X
	if g.hasTarget {
		x = g.world.ClampPaddle(g.paddleTarget)
	}

	res := g.sim.Advance(g.world, x)
	g.world.Ticks++
	g.effects = append(g.effects, res.Effects...)

	g.outcome = res.Outcome
	g.fsm.Update(g, g.tickInterval)
	g.outcome = events.OutcomeNone
}

// Resize fits the playfield to the available width, keeping the aspect ratio
func (g *Game) Resize(available float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fitted := g.cfg.Resized(available)
	g.world.Resize(fitted.Playfield.Width, fitted.Playfield.Height)
	g.hasTarget = false
}

// Snapshot copies the world for drawing and hands out pending effects
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := g.world.Snapshot(g.fsm.CurrentStateName())
	snap.Effects = g.effects
	g.effects = nil
	return snap
}

// resetSession starts over at level 1; caller holds the lock or is the FSM
func (g *Game) resetSession() {
	w := g.world
	w.Level = constants.FirstLevel
	w.Score = 0
	w.Lives = w.MaxLives
	w.Ticks = 0
	g.loadLevel()
	log.Printf("session reset: level %d", w.Level)
}

// nextLevel advances the level keeping score and lives
func (g *Game) nextLevel() {
	g.world.Level++
	g.loadLevel()
	log.Printf("level %d started: score %d lives %d", g.world.Level, g.world.Score, g.world.Lives)
}

func (g *Game) loadLevel() {
	w := g.world
	w.Blocks = g.sim.Layout(w.Level, w.Width)
	w.CenterPaddle()
	w.ResetBalls()
	w.ClearTransient()
	g.hasTarget = false
	g.effects = nil
}
