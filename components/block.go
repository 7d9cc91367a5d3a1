package components

import "github.com/Caizj-lg/block-breaker-game/vmath"

// HitsIndestructible marks a wall block
const HitsIndestructible = -1

// Block is one brick of the level grid
// Destroyed only flips false to true, and never for walls
type Block struct {
	X, Y          float64
	Width, Height float64

	Color Color

	Destroyed bool
	IsWall    bool

	// Hits is -1 for walls and 1 for normal blocks; never decremented
	Hits int
}

// Rect returns the block bounds for collision tests
func (b *Block) Rect() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Active reports whether the block still takes part in collisions
func (b *Block) Active() bool {
	return !b.Destroyed
}

// Breakable reports whether the block counts toward level completion
func (b *Block) Breakable() bool {
	return !b.IsWall && !b.Destroyed
}
