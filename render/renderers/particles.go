package renderers

import (
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/render"
)

// ParticleRenderer draws particles fading toward the background as life runs out
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render implements SystemRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Empty() {
		return
	}
	for i := range ctx.Snap.Particles {
		p := &ctx.Snap.Particles[i]
		alpha := p.Alpha()
		if alpha <= 0 {
			continue
		}
		x, y := ctx.ToCell(p.X, p.Y)
		// Solid cells keep their glyph, particles only tint empty space
		if cell := buf.Get(x, y); cell.Rune != ' ' && cell.Rune != 0 && cell.Rune != constants.ParticleGlyph {
			continue
		}
		buf.SetFgOnly(x, y, constants.ParticleGlyph, render.Fade(p.Color, alpha))
	}
}
