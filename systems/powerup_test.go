package systems

import (
	"math"
	"testing"

	"github.com/Caizj-lg/block-breaker-game/components"
	"github.com/Caizj-lg/block-breaker-game/vmath"
)

func TestSplitDoublesFreeBalls(t *testing.T) {
	balls := []components.Ball{
		{X: 10, Y: 10, DX: 3, DY: 4},
		{X: 20, Y: 20, Attached: true},
		{X: 30, Y: 30, DX: -2, DY: -1},
		{X: 40, Y: 40, DX: 0, DY: 5},
	}

	out := SplitBalls(balls)

	if got := countFree(out); got != 6 {
		t.Errorf("Expected 6 free balls, got %d", got)
	}
	if len(out) != 7 {
		t.Errorf("Expected attached ball kept, got %d balls", len(out))
	}

	// Each pair keeps position and per-ball speed
	pairs := [][2]int{{0, 1}, {3, 4}, {5, 6}}
	sources := []components.Ball{balls[0], balls[2], balls[3]}
	for i, p := range pairs {
		src := sources[i]
		for _, idx := range p {
			b := out[idx]
			if b.X != src.X || b.Y != src.Y {
				t.Errorf("split ball %d moved to (%v, %v)", idx, b.X, b.Y)
			}
			if !almostEqual(vmath.Speed(b.DX, b.DY), vmath.Speed(src.DX, src.DY)) {
				t.Errorf("split ball %d speed %v, want %v", idx, vmath.Speed(b.DX, b.DY), vmath.Speed(src.DX, src.DY))
			}
		}
		// Headings are 0.6 rad apart
		h0 := math.Atan2(out[p[0]].DY, out[p[0]].DX)
		h1 := math.Atan2(out[p[1]].DY, out[p[1]].DX)
		diff := math.Mod(h1-h0+2*math.Pi, 2*math.Pi)
		if !almostEqual(diff, 0.6) {
			t.Errorf("pair %d heading gap %v, want 0.6", i, diff)
		}
	}
	if !out[2].Attached {
		t.Error("Attached ball lost its place")
	}
}

func TestSplitWithNoFreeBalls(t *testing.T) {
	out := SplitBalls([]components.Ball{{Attached: true}})
	if len(out) != 1 || !out[0].Attached {
		t.Errorf("Expected attached ball only, got %+v", out)
	}
}

func TestScatterAddsFiveBalls(t *testing.T) {
	for _, existing := range []int{0, 1, 7} {
		_, w := newTestSystem(t, nil)
		w.Paddle.X = 190
		for i := 0; i < existing; i++ {
			w.Balls = append(w.Balls, components.Ball{X: 100, Y: 100, DX: 1, DY: 1})
		}

		ScatterBalls(w, 5)

		if got := len(w.Balls) - existing; got != 5 {
			t.Errorf("existing %d: expected 5 new balls, got %d", existing, got)
		}
		fan := w.Balls[existing:]
		for i, b := range fan {
			if b.X != 240 || b.Y != w.PaddleY-w.BallRadius-2 || b.Attached {
				t.Errorf("scatter ball %d at (%v, %v) attached=%v", i, b.X, b.Y, b.Attached)
			}
			if !almostEqual(vmath.Speed(b.DX, b.DY), 5) || b.DY >= 0 {
				t.Errorf("scatter ball %d velocity (%v, %v)", i, b.DX, b.DY)
			}
		}
		if !almostEqual(fan[2].DX, 0) || !almostEqual(fan[2].DY, -5) {
			t.Errorf("middle scatter ball not vertical: (%v, %v)", fan[2].DX, fan[2].DY)
		}
		if fan[0].DX >= 0 || fan[4].DX <= 0 {
			t.Errorf("fan not spread left to right: %v .. %v", fan[0].DX, fan[4].DX)
		}
	}
}

func TestActivatePowerUpEmitsBurst(t *testing.T) {
	s, w := newTestSystem(t, nil)
	item := components.Item{X: 120, Y: 580, Type: components.ItemScatter}

	effect := ActivatePowerUp(w, item, 5, s.cfg.Particles, s.rng)

	if len(w.Balls) != 5 {
		t.Errorf("Expected 5 scatter balls, got %d", len(w.Balls))
	}
	if len(w.Particles) != 12 {
		t.Errorf("Expected 12 pickup particles, got %d", len(w.Particles))
	}
	if effect.X != 120 || effect.Y != 580 || effect.Color != components.ColorItemScatter || effect.Count != 12 {
		t.Errorf("Unexpected effect %+v", effect)
	}
}
