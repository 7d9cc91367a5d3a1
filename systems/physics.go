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

// PhysicsSystem is the breakout rule set: ball motion, collisions, items and particles
// It holds no world state; every call works on the world passed in
type PhysicsSystem struct {
	cfg config.Config
	rng *vmath.FastRand
}

// NewPhysicsSystem creates the rule set; rng drives layout, drops and particle spread
func NewPhysicsSystem(cfg config.Config, rng *vmath.FastRand) *PhysicsSystem {
	return &PhysicsSystem{cfg: cfg, rng: rng}
}

var _ engine.Simulation = (*PhysicsSystem)(nil)

// Layout builds the block grid for a level
func (s *PhysicsSystem) Layout(level int, width float64) []components.Block {
	return Layout(level, width, s.cfg.Blocks, s.rng)
}

// Launch detaches the first attached ball with a near-vertical velocity
func (s *PhysicsSystem) Launch(w *engine.World) bool {
	for i := range w.Balls {
		b := &w.Balls[i]
		if !b.Attached {
			continue
		}
		b.Attached = false
		b.DX = (s.rng.Float64() - 0.5) * constants.LaunchJitter
		b.DY = -s.cfg.Ball.Speed
		return true
	}
	return false
}

// Advance runs one tick: balls, ball loss, items, particles, then level completion
// paddleX must already be clamped to the playfield
func (s *PhysicsSystem) Advance(w *engine.World, paddleX float64) engine.StepResult {
	var res engine.StepResult
	w.Paddle.X = paddleX

	s.updateBalls(w, &res)

	if len(w.Balls) == 0 {
		w.Lives--
		res.LivesDelta = -1
		if w.Lives <= 0 {
			w.Lives = 0
			res.Outcome = events.OutcomeGameOver
			return res
		}
		w.ResetBalls()
	}

	s.updateItems(w, &res)
	w.Particles = UpdateParticles(w.Particles, s.cfg.Particles.Gravity)

	if w.RemainingBlocks() == 0 {
		res.Outcome = events.OutcomeLevelUp
	}
	return res
}

func (s *PhysicsSystem) updateBalls(w *engine.World, res *engine.StepResult) {
	r := w.BallRadius
	kept := w.Balls[:0]
	for _, b := range w.Balls {
		if b.Attached {
			follow := w.AttachedBall()
			b.X, b.Y = follow.X, follow.Y
			b.DX, b.DY = 0, 0
			kept = append(kept, b)
			continue
		}

		b.X += b.DX
		b.Y += b.DY

		s.collideWalls(w, &b)
		s.collidePaddle(w, &b, res)
		s.collideBlocks(w, &b, res)

		if b.Y > w.Height+r {
			continue
		}
		kept = append(kept, b)
	}
	w.Balls = kept
}

// collideWalls reflects off the side walls and the header floor
// Velocity is forced inward rather than negated, so a second pass is a no-op
func (s *PhysicsSystem) collideWalls(w *engine.World, b *components.Ball) {
	r := w.BallRadius
	if b.X-r <= 0 {
		b.DX = math.Abs(b.DX)
		b.X = r
	}
	if b.X+r >= w.Width {
		b.DX = -math.Abs(b.DX)
		b.X = w.Width - r
	}
	if b.Y-r <= w.Header {
		b.DY = math.Abs(b.DY)
		b.Y = w.Header + r
	}
}

// collidePaddle bounces a descending ball at an angle set by where it struck the paddle
func (s *PhysicsSystem) collidePaddle(w *engine.World, b *components.Ball, res *engine.StepResult) {
	r := w.BallRadius
	p := &w.Paddle
	py := w.PaddleY

	if b.DY <= 0 ||
		b.Y+r < py || b.Y-r > py+w.PaddleHeight ||
		b.X < p.X-r || b.X > p.X+p.Width+r {
		return
	}

	hit := vmath.Clamp((b.X-p.X)/p.Width, 0, 1)
	angle := (hit - 0.5) * constants.PaddleBounceSpread
	speed := vmath.Speed(b.DX, b.DY)

	b.DX = math.Sin(angle) * speed
	b.DY = -math.Abs(math.Cos(angle) * speed)
	b.Y = py - r

	s.burst(w, res, b.X, b.Y, components.ColorPaddle, constants.PaddleBurstCount)
}

// collideBlocks resolves the first overlapping block in layout order and ignores the rest
func (s *PhysicsSystem) collideBlocks(w *engine.World, b *components.Ball, res *engine.StepResult) {
	r := w.BallRadius
	for i := range w.Blocks {
		blk := &w.Blocks[i]
		if blk.Destroyed {
			continue
		}
		rect := blk.Rect()
		if !vmath.CircleRectOverlap(b.X, b.Y, r, rect) {
			continue
		}

		b.DX, b.DY = vmath.ResolveBounce(b.X, b.Y, b.DX, b.DY, r, rect)

		if blk.IsWall {
			s.burst(w, res, b.X, b.Y, components.ColorWall, constants.WallBurstCount)
			return
		}

		blk.Destroyed = true
		w.Score += constants.ScorePerBlock
		res.ScoreDelta += constants.ScorePerBlock

		cx, cy := rect.Center()
		s.burst(w, res, cx, cy, blk.Color, constants.BlockBurstCount)
		s.maybeDrop(w, cx, cy)
		return
	}
}

func (s *PhysicsSystem) maybeDrop(w *engine.World, x, y float64) {
	if s.rng.Float64() >= s.cfg.Items.DropChance {
		return
	}
	kind := components.ItemSplit
	if s.rng.Float64() >= 0.5 {
		kind = components.ItemScatter
	}
	w.Items = append(w.Items, components.Item{X: x, Y: y, Type: kind})
}

// updateItems drops items, activating those that reach the paddle inside its span
func (s *PhysicsSystem) updateItems(w *engine.World, res *engine.StepResult) {
	half := w.ItemSize / 2
	kept := w.Items[:0]
	for _, item := range w.Items {
		item.Y += s.cfg.Items.Speed

		if item.Y+half >= w.PaddleY && item.X >= w.Paddle.X && item.X <= w.Paddle.X+w.Paddle.Width {
			res.Effects = append(res.Effects, ActivatePowerUp(w, item, s.cfg.Ball.Speed, s.cfg.Particles, s.rng))
			continue
		}
		if item.Y < w.Height+w.ItemSize {
			kept = append(kept, item)
		}
	}
	clear(w.Items[len(kept):])
	w.Items = kept
}

// burst spawns a radial particle burst and records it as an effect
func (s *PhysicsSystem) burst(w *engine.World, res *engine.StepResult, x, y float64, color components.Color, count int) {
	w.Particles = SpawnBurst(w.Particles, x, y, color, count, s.cfg.Particles, s.rng)
	res.Effects = append(res.Effects, events.Effect{
		Kind:  events.EffectParticleBurst,
		X:     x,
		Y:     y,
		Color: color,
		Count: count,
	})
}
