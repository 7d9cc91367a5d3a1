package components

import "github.com/Caizj-lg/block-breaker-game/vmath"

// Paddle is the player-controlled bar, X is its left edge
// Width must be positive
type Paddle struct {
	X     float64
	Width float64
}

// Center returns the horizontal midpoint
func (p *Paddle) Center() float64 {
	return p.X + p.Width/2
}

// Rect returns the paddle bounds at vertical position y with the given height
func (p *Paddle) Rect(y, height float64) vmath.Rect {
	return vmath.Rect{X: p.X, Y: y, Width: p.Width, Height: height}
}
