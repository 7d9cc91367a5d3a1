package renderers

import (
	"github.com/Caizj-lg/block-breaker-game/components"
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/render"
)

// PaddleRenderer draws the paddle bar
type PaddleRenderer struct{}

func NewPaddleRenderer() *PaddleRenderer {
	return &PaddleRenderer{}
}

// Render implements SystemRenderer
func (r *PaddleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Empty() {
		return
	}
	s := ctx.Snap
	x0, y := ctx.ToCell(s.Paddle.X, s.PaddleY+s.PaddleHeight/2)
	n := ctx.SpanCols(s.Paddle.Width)
	fg := render.Palette(components.ColorPaddle)
	for i := 0; i < n; i++ {
		if ctx.InField(x0+i, y) {
			buf.SetFgOnly(x0+i, y, constants.PaddleGlyph, fg)
		}
	}
}

// BallRenderer draws every ball, attached or free
type BallRenderer struct{}

func NewBallRenderer() *BallRenderer {
	return &BallRenderer{}
}

// Render implements SystemRenderer
func (r *BallRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Empty() {
		return
	}
	fg := render.Palette(components.ColorBall)
	for i := range ctx.Snap.Balls {
		x, y := ctx.ToCell(ctx.Snap.Balls[i].X, ctx.Snap.Balls[i].Y)
		buf.SetFgOnly(x, y, constants.BallGlyph, fg)
	}
}

// ItemRenderer draws falling power-ups by their type glyph
type ItemRenderer struct{}

func NewItemRenderer() *ItemRenderer {
	return &ItemRenderer{}
}

// Render implements SystemRenderer
func (r *ItemRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Empty() {
		return
	}
	for i := range ctx.Snap.Items {
		it := &ctx.Snap.Items[i]
		// Items still falling past the bottom edge stay off screen
		if it.Y > ctx.Snap.Height {
			continue
		}
		x, y := ctx.ToCell(it.X, it.Y)
		buf.SetWithBg(x, y, it.Type.Glyph(), render.RgbBackground, render.Palette(it.Type.Color()))
	}
}
