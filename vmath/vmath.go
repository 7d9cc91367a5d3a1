package vmath

import "math"

// --- Arithmetic ---

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Vectors ---

// Speed returns the magnitude of velocity (dx, dy)
func Speed(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// Rotate rotates (dx, dy) by angle radians, magnitude is preserved
func Rotate(dx, dy, angle float64) (float64, float64) {
	speed := Speed(dx, dy)
	heading := math.Atan2(dy, dx) + angle
	return math.Cos(heading) * speed, math.Sin(heading) * speed
}

// FromAngle returns a velocity of the given magnitude pointing at angle radians
func FromAngle(angle, speed float64) (float64, float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// --- Randomness ---

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RangeInt returns an integer in [lo, hi] inclusive
func (r *FastRand) RangeInt(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// RangeF returns a value in [lo, hi)
func (r *FastRand) RangeF(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
