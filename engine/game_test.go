package engine

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/Caizj-lg/block-breaker-game/components"
	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/events"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// fakeSim records calls and reports a scripted outcome
type fakeSim struct {
	outcome  events.Outcome
	effects  []events.Effect
	advances int
	paddleX  float64
	layouts  []int
}

func (f *fakeSim) Advance(w *World, paddleX float64) StepResult {
	f.advances++
	f.paddleX = paddleX
	w.Paddle.X = paddleX
	return StepResult{Outcome: f.outcome, Effects: f.effects}
}

func (f *fakeSim) Layout(level int, width float64) []components.Block {
	f.layouts = append(f.layouts, level)
	return []components.Block{{X: 0, Y: 60, Width: 36, Height: 16, Hits: 1}}
}

func (f *fakeSim) Launch(w *World) bool {
	for i := range w.Balls {
		if w.Balls[i].Attached {
			w.Balls[i].Attached = false
			return true
		}
	}
	return false
}

func newTestGame(t *testing.T) (*Game, *fakeSim) {
	t.Helper()
	sim := &fakeSim{}
	g, err := NewGame(config.Default(), sim)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g, sim
}

func TestNewGameStartsInMenu(t *testing.T) {
	g, sim := newTestGame(t)

	if g.State() != StateMenu {
		t.Fatalf("Expected state %s, got %s", StateMenu, g.State())
	}

	snap := g.Snapshot()
	if snap.Level != 1 || snap.Lives != 3 || snap.Score != 0 {
		t.Errorf("Expected level 1, 3 lives, score 0; got level %d, %d lives, score %d", snap.Level, snap.Lives, snap.Score)
	}
	if len(snap.Blocks) != 1 {
		t.Errorf("Expected layout blocks in menu, got %d", len(snap.Blocks))
	}
	if len(snap.Balls) != 1 || !snap.Balls[0].Attached {
		t.Errorf("Expected one attached ball, got %+v", snap.Balls)
	}
	if len(sim.layouts) == 0 || sim.layouts[0] != 1 {
		t.Errorf("Expected layout for level 1, got %v", sim.layouts)
	}
}

func TestTickOnlyAdvancesWhilePlaying(t *testing.T) {
	g, sim := newTestGame(t)

	g.Tick()
	if sim.advances != 0 {
		t.Fatalf("Tick in menu advanced the simulation %d times", sim.advances)
	}

	if !g.Start() {
		t.Fatal("Start from menu should succeed")
	}
	g.Tick()
	g.Tick()
	if sim.advances != 2 {
		t.Errorf("Expected 2 advances while playing, got %d", sim.advances)
	}
	if snap := g.Snapshot(); snap.Ticks != 2 {
		t.Errorf("Expected 2 ticks, got %d", snap.Ticks)
	}

	g.Pause()
	g.Tick()
	if sim.advances != 2 {
		t.Errorf("Tick while paused advanced the simulation")
	}
}

func TestPauseResumeFlow(t *testing.T) {
	g, _ := newTestGame(t)

	if g.Pause() {
		t.Error("Pause from menu should be ignored")
	}

	g.Start()
	if !g.TogglePause() || g.State() != StatePaused {
		t.Fatalf("Expected paused after toggle, got %s", g.State())
	}
	if g.Launch() {
		t.Error("Launch while paused should be rejected")
	}
	if !g.TogglePause() || g.State() != StatePlaying {
		t.Fatalf("Expected playing after second toggle, got %s", g.State())
	}
}

func TestLaunchOnlyWhilePlaying(t *testing.T) {
	g, _ := newTestGame(t)

	if g.Launch() {
		t.Error("Launch in menu should be rejected")
	}

	g.Start()
	if !g.Launch() {
		t.Fatal("Launch with attached ball should succeed")
	}
	if g.Launch() {
		t.Error("Second launch without attached ball should fail")
	}
	if g.Snapshot().HasAttachedBall() {
		t.Error("Ball should be free after launch")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g, sim := newTestGame(t)
	g.Start()

	sim.outcome = events.OutcomeGameOver
	g.Tick()
	if g.State() != StateGameOver {
		t.Fatalf("Expected %s, got %s", StateGameOver, g.State())
	}

	// Simulation result is ignored outside playing
	sim.outcome = events.OutcomeNone
	g.Tick()
	if sim.advances != 1 {
		t.Errorf("Expected no advance in game over, got %d", sim.advances)
	}

	if g.Continue() {
		t.Error("Continue should not apply in game over")
	}
	if !g.Confirm() || g.State() != StatePlaying {
		t.Fatalf("Confirm in game over should restart, got %s", g.State())
	}

	snap := g.Snapshot()
	if snap.Level != 1 || snap.Lives != snap.MaxLives || snap.Score != 0 || snap.Ticks != 0 {
		t.Errorf("Restart did not reset session: %+v", snap)
	}
}

func TestLevelUpAndContinue(t *testing.T) {
	g, sim := newTestGame(t)
	g.Start()

	g.mu.Lock()
	g.world.Score = 120
	g.world.Lives = 2
	g.mu.Unlock()

	sim.outcome = events.OutcomeLevelUp
	g.Tick()
	if g.State() != StateLevelUp {
		t.Fatalf("Expected %s, got %s", StateLevelUp, g.State())
	}

	sim.outcome = events.OutcomeNone
	if !g.Confirm() || g.State() != StatePlaying {
		t.Fatalf("Confirm in level up should continue, got %s", g.State())
	}

	snap := g.Snapshot()
	if snap.Level != 2 {
		t.Errorf("Expected level 2, got %d", snap.Level)
	}
	if snap.Score != 120 || snap.Lives != 2 {
		t.Errorf("Continue should keep score and lives, got score %d lives %d", snap.Score, snap.Lives)
	}
	if !snap.HasAttachedBall() {
		t.Error("New level should start with an attached ball")
	}
	if last := sim.layouts[len(sim.layouts)-1]; last != 2 {
		t.Errorf("Expected layout for level 2, got %d", last)
	}
}

func TestClockHookFollowsPlaying(t *testing.T) {
	g, sim := newTestGame(t)

	var calls []bool
	g.SetClockHook(func(running bool) { calls = append(calls, running) })

	g.Start()
	g.Pause()
	g.Resume()
	sim.outcome = events.OutcomeGameOver
	g.Tick()

	want := []bool{false, true, false, true, false}
	if len(calls) != len(want) {
		t.Fatalf("Expected hook calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("hook call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestPaddleInputIsClamped(t *testing.T) {
	g, sim := newTestGame(t)
	g.Start()

	tests := []struct {
		name  string
		apply func()
		want  float64
	}{
		{"target left of field", func() { g.SetPaddleTarget(-50) }, 0},
		{"target right of field", func() { g.SetPaddleTarget(1000) }, 380},
		{"center mid field", func() { g.SetPaddleCenter(240) }, 190},
		{"center beyond right", func() { g.SetPaddleCenter(470) }, 380},
		{"nudge left", func() { g.NudgePaddle(-30) }, 350},
		{"nudge past left", func() { g.NudgePaddle(-1000) }, 0},
	}

	for _, tc := range tests {
		tc.apply()
		g.Tick()
		if sim.paddleX != tc.want {
			t.Errorf("%s: paddle x = %v, want %v", tc.name, sim.paddleX, tc.want)
		}
	}
}

func TestSnapshotDrainsEffects(t *testing.T) {
	g, sim := newTestGame(t)
	g.Start()

	sim.effects = []events.Effect{{Kind: events.EffectParticleBurst, X: 10, Y: 20, Count: 8}}
	g.Tick()
	g.Tick()

	snap := g.Snapshot()
	if len(snap.Effects) != 2 {
		t.Fatalf("Expected 2 pending effects, got %d", len(snap.Effects))
	}
	if again := g.Snapshot(); len(again.Effects) != 0 {
		t.Errorf("Effects should be handed out once, got %d", len(again.Effects))
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	g, _ := newTestGame(t)

	snap := g.Snapshot()
	snap.Blocks[0].Destroyed = true
	snap.Balls[0].X = -1

	again := g.Snapshot()
	if again.Blocks[0].Destroyed || again.Balls[0].X == -1 {
		t.Error("Snapshot mutation leaked into the world")
	}
}

func TestResizeKeepsAspect(t *testing.T) {
	g, _ := newTestGame(t)

	g.Resize(474)
	snap := g.Snapshot()
	if snap.Width != 474 || snap.Height != 632 {
		t.Errorf("Expected 474x632 playfield, got %vx%v", snap.Width, snap.Height)
	}
	if snap.PaddleY != 597 {
		t.Errorf("Expected paddle y 597, got %v", snap.PaddleY)
	}
	if snap.Paddle.X != 187 {
		t.Errorf("Expected re-centered paddle at 187, got %v", snap.Paddle.X)
	}
	if snap.Balls[0].X != 237 {
		t.Errorf("Expected attached ball to follow paddle center, got %v", snap.Balls[0].X)
	}

	g.Resize(2000)
	if snap := g.Snapshot(); snap.Width != 480 || snap.Height != 640 {
		t.Errorf("Expected capped 480x640, got %vx%v", snap.Width, snap.Height)
	}
}

func TestResizeKeepsPaddleInsideNarrowField(t *testing.T) {
	g, sim := newTestGame(t)
	g.Start()
	layouts := len(sim.layouts)

	g.Resize(40)
	snap := g.Snapshot()
	if snap.Width != 465 || snap.Height != 620 {
		t.Fatalf("Expected playfield floored at 465x620, got %vx%v", snap.Width, snap.Height)
	}
	if snap.Paddle.X < 0 || snap.Paddle.X+snap.Paddle.Width > snap.Width {
		t.Errorf("Paddle [%v, %v] outside playfield width %v", snap.Paddle.X, snap.Paddle.X+snap.Paddle.Width, snap.Width)
	}

	if len(sim.layouts) != layouts || snap.Blocks[0].X != 0 {
		t.Errorf("Resize rebuilt blocks: layouts %v, first block x %v", sim.layouts, snap.Blocks[0].X)
	}

	g.SetPaddleCenter(-500)
	g.Tick()
	if sim.paddleX != 0 {
		t.Errorf("Left clamp = %v, want 0", sim.paddleX)
	}
	g.SetPaddleCenter(5000)
	g.Tick()
	if sim.paddleX != 365 {
		t.Errorf("Right clamp = %v, want 365", sim.paddleX)
	}
}
