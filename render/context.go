package render

import (
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap *engine.Snapshot

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Field area in cells, below the status header
	FieldX    int
	FieldY    int
	FieldCols int
	FieldRows int

	// World units per cell
	unitX float64
	unitY float64
}

// NewRenderContext fits the snapshot playfield below the header rows, centered horizontally
// Each axis scales independently so the whole field is always visible
func NewRenderContext(snap *engine.Snapshot, screenWidth, screenHeight int) RenderContext {
	ctx := RenderContext{
		Snap:         snap,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		FieldY:       constants.HeaderRows,
	}

	cols := screenWidth
	rows := screenHeight - constants.HeaderRows
	fieldH := snap.Height - snap.Header
	if cols <= 0 || rows <= 0 || snap.Width <= 0 || fieldH <= 0 {
		return ctx
	}

	// Terminal cells are roughly twice as tall as wide; narrow the field when the screen is wide
	maxCols := int(snap.Width / fieldH * float64(rows) * 2)
	if maxCols > 0 && cols > maxCols {
		cols = maxCols
	}

	ctx.FieldCols = cols
	ctx.FieldRows = rows
	ctx.FieldX = (screenWidth - cols) / 2
	ctx.unitX = snap.Width / float64(cols)
	ctx.unitY = fieldH / float64(rows)
	return ctx
}

// Empty reports a screen too small to hold the field
func (c RenderContext) Empty() bool {
	return c.FieldCols <= 0 || c.FieldRows <= 0
}

// ToCell maps a world point to screen cell coordinates
func (c RenderContext) ToCell(x, y float64) (int, int) {
	if c.Empty() {
		return -1, -1
	}
	col := int(x / c.unitX)
	row := int((y - c.Snap.Header) / c.unitY)
	col = min(max(col, 0), c.FieldCols-1)
	row = min(max(row, 0), c.FieldRows-1)
	return c.FieldX + col, c.FieldY + row
}

// SpanCols returns how many columns a world width covers, at least one
func (c RenderContext) SpanCols(width float64) int {
	if c.Empty() {
		return 0
	}
	return max(int(width/c.unitX+0.5), 1)
}

// InField reports whether a screen cell lies in the field area
func (c RenderContext) InField(x, y int) bool {
	return x >= c.FieldX && x < c.FieldX+c.FieldCols && y >= c.FieldY && y < c.FieldY+c.FieldRows
}

// ToWorldX maps a screen column to the world x at the cell center
// ok is false outside the field columns
func (c RenderContext) ToWorldX(col int) (float64, bool) {
	if c.Empty() || col < c.FieldX || col >= c.FieldX+c.FieldCols {
		return 0, false
	}
	return (float64(col-c.FieldX) + 0.5) * c.unitX, true
}
