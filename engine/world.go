package engine

import (
	"github.com/Caizj-lg/block-breaker-game/components"
	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/events"
	"github.com/Caizj-lg/block-breaker-game/vmath"
)

// Geometry is the playfield frame the simulation runs in
type Geometry struct {
	Width, Height float64
	Header        float64

	PaddleY      float64
	PaddleHeight float64
	PaddleOffset float64

	BallRadius float64
	ItemSize   float64
}

// GeometryFrom derives the playfield frame from cfg
func GeometryFrom(cfg config.Config) Geometry {
	return Geometry{
		Width:        cfg.Playfield.Width,
		Height:       cfg.Playfield.Height,
		Header:       cfg.Playfield.Header,
		PaddleY:      cfg.PaddleY(),
		PaddleHeight: cfg.Paddle.Height,
		PaddleOffset: cfg.Paddle.OffsetBottom,
		BallRadius:   cfg.Ball.Radius,
		ItemSize:     cfg.Items.Size,
	}
}

// World is the explicit state record of one game session
// Entity collections are owned by the simulation step during a tick
type World struct {
	Geometry

	Paddle    components.Paddle
	Balls     []components.Ball
	Blocks    []components.Block
	Items     []components.Item
	Particles []components.Particle

	Score    int
	Lives    int
	MaxLives int
	Level    int

	// Ticks counts simulation steps since the session started
	Ticks uint64
}

// NewWorld creates a world with a centered paddle and no level loaded
func NewWorld(cfg config.Config) *World {
	w := &World{
		Geometry: GeometryFrom(cfg),
		Paddle:   components.Paddle{Width: cfg.Paddle.Width},
		Lives:    cfg.Game.Lives,
		MaxLives: cfg.Game.Lives,
		Level:    constants.FirstLevel,
	}
	w.CenterPaddle()
	return w
}

// CenterPaddle moves the paddle to the horizontal middle
func (w *World) CenterPaddle() {
	w.Paddle.X = (w.Width - w.Paddle.Width) / 2
}

// ClampPaddle restricts a paddle left edge to the playfield
func (w *World) ClampPaddle(x float64) float64 {
	return vmath.Clamp(x, 0, w.Width-w.Paddle.Width)
}

// AttachedBall returns a ball resting on the paddle center
func (w *World) AttachedBall() components.Ball {
	return components.Ball{
		X:        w.Paddle.Center(),
		Y:        w.PaddleY - w.BallRadius - constants.AttachedBallGap,
		Attached: true,
	}
}

// ResetBalls replaces all balls with a single attached ball
func (w *World) ResetBalls() {
	w.Balls = append(w.Balls[:0], w.AttachedBall())
}

// ClearTransient drops items and particles
func (w *World) ClearTransient() {
	w.Items = w.Items[:0]
	w.Particles = w.Particles[:0]
}

// Resize fits the playfield to a new size and re-centers the paddle
// Blocks keep their positions until the next layout
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.Width = width
	w.Height = height
	w.PaddleY = height - w.PaddleOffset
	w.CenterPaddle()

	for i := range w.Balls {
		if w.Balls[i].Attached {
			w.Balls[i] = w.AttachedBall()
		}
	}
}

// RemainingBlocks counts blocks that still gate level completion
func (w *World) RemainingBlocks() int {
	n := 0
	for i := range w.Blocks {
		if w.Blocks[i].Breakable() {
			n++
		}
	}
	return n
}

// StepResult is what one simulation step reports besides the mutated world
type StepResult struct {
	Effects    []events.Effect
	Outcome    events.Outcome
	ScoreDelta int
	LivesDelta int
}

// Simulation is the per-tick rule set driven by Game
type Simulation interface {
	// Advance runs one tick with an already clamped paddle left edge
	Advance(w *World, paddleX float64) StepResult
	// Layout builds the block grid for a level
	Layout(level int, width float64) []components.Block
	// Launch detaches the first attached ball, false if none rests on the paddle
	Launch(w *World) bool
}

// Snapshot is a read-only copy of the world for presentation
type Snapshot struct {
	State string
	Geometry

	Paddle    components.Paddle
	Balls     []components.Ball
	Blocks    []components.Block
	Items     []components.Item
	Particles []components.Particle

	Score    int
	Lives    int
	MaxLives int
	Level    int
	Ticks    uint64

	// Effects accumulated since the previous snapshot
	Effects []events.Effect
}

// Snapshot copies the world; slices do not alias world storage
func (w *World) Snapshot(state string) Snapshot {
	return Snapshot{
		State:     state,
		Geometry:  w.Geometry,
		Paddle:    w.Paddle,
		Balls:     append([]components.Ball(nil), w.Balls...),
		Blocks:    append([]components.Block(nil), w.Blocks...),
		Items:     append([]components.Item(nil), w.Items...),
		Particles: append([]components.Particle(nil), w.Particles...),
		Score:     w.Score,
		Lives:     w.Lives,
		MaxLives:  w.MaxLives,
		Level:     w.Level,
		Ticks:     w.Ticks,
	}
}

// HasAttachedBall reports whether a ball waits for launch
func (s Snapshot) HasAttachedBall() bool {
	for i := range s.Balls {
		if s.Balls[i].Attached {
			return true
		}
	}
	return false
}
