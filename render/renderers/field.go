package renderers

import (
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/render"
)

// FieldRenderer paints the playfield background and the block grid
type FieldRenderer struct{}

// NewFieldRenderer creates a field renderer
func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// Render implements SystemRenderer
func (r *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Empty() {
		return
	}
	buf.FillRect(ctx.FieldX, ctx.FieldY, ctx.FieldCols, ctx.FieldRows, ' ', render.RgbText, render.RgbBackground)

	for i := range ctx.Snap.Blocks {
		b := &ctx.Snap.Blocks[i]
		if b.Destroyed {
			continue
		}

		glyph := constants.BlockGlyph
		if b.IsWall {
			glyph = constants.WallGlyph
		}

		// Right edge is exclusive so neighbours keep a one cell gap when the scale allows
		x0, y := ctx.ToCell(b.X, b.Y+b.Height/2)
		x1, _ := ctx.ToCell(b.X+b.Width, b.Y)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		fg := render.Palette(b.Color)
		for x := x0; x < x1; x++ {
			buf.SetWithBg(x, y, glyph, fg, render.RgbBackground)
		}
	}
}
