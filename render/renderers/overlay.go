package renderers

import (
	"fmt"
	"unicode/utf8"

	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/core"
	"github.com/Caizj-lg/block-breaker-game/engine"
	"github.com/Caizj-lg/block-breaker-game/render"
)

const (
	overlayMinWidth = 24
	overlayPaddingX = 2
)

// OverlayRenderer draws the modal card for every state except playing,
// and the launch prompt while a ball rests on the paddle
type OverlayRenderer struct{}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// OverlayFor builds the overlay shown for a snapshot, nil while playing
func OverlayFor(s *engine.Snapshot) *core.OverlayContent {
	switch s.State {
	case engine.StateMenu:
		return &core.OverlayContent{
			Title: constants.TitleText,
			Items: []core.OverlayItem{
				core.OverlayHint{Text: constants.MenuHint},
				core.OverlayHint{Text: constants.ControlsHint},
			},
		}
	case engine.StatePaused:
		return &core.OverlayContent{
			Title: constants.PausedText,
			Items: []core.OverlayItem{core.OverlayHint{Text: constants.ResumeHint}},
		}
	case engine.StateGameOver:
		return &core.OverlayContent{
			Title: constants.GameOverText,
			Items: []core.OverlayItem{
				core.OverlayCard{Entries: []core.CardEntry{
					{Key: "Score", Value: fmt.Sprint(s.Score)},
					{Key: "Level", Value: fmt.Sprint(s.Level)},
				}},
				core.OverlayHint{Text: constants.RestartHint},
			},
		}
	case engine.StateLevelUp:
		// The level advances when the player continues
		return &core.OverlayContent{
			Title: constants.LevelClearText,
			Items: []core.OverlayItem{
				core.OverlayCard{Entries: []core.CardEntry{
					{Key: "Score", Value: fmt.Sprint(s.Score)},
					{Key: "Next level", Value: fmt.Sprint(s.Level + 1)},
				}},
				core.OverlayHint{Text: constants.ContinueHint},
			},
		}
	}
	return nil
}

// IsVisible implements VisibilityToggle
func (r *OverlayRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.Empty() && (ctx.Snap.State != engine.StatePlaying || ctx.Snap.HasAttachedBall())
}

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	content := OverlayFor(ctx.Snap)
	if content == nil {
		r.renderLaunchHint(ctx, buf)
		return
	}

	lines := content.Lines()
	hints := 0
	for _, item := range content.Items {
		if _, ok := item.(core.OverlayHint); ok {
			hints++
		}
	}

	width := overlayMinWidth
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l)+2*overlayPaddingX+2)
	}
	width = min(width, ctx.FieldCols)
	height := min(len(lines)+4, ctx.FieldRows)

	startX := ctx.FieldX + (ctx.FieldCols-width)/2
	startY := ctx.FieldY + (ctx.FieldRows-height)/2

	buf.FillRect(startX, startY, width, height, ' ', render.RgbText, render.RgbOverlayBg)
	drawBorder(buf, startX, startY, width, height)

	for i, l := range lines {
		y := startY + 2 + i
		if y >= startY+height-1 {
			break
		}
		fg := render.RgbText
		if i >= len(lines)-hints {
			fg = render.RgbTextMuted
		}
		if runes := []rune(l); len(runes) > width-2 {
			l = string(runes[:max(width-2, 0)])
		}
		x := startX + (width-utf8.RuneCountInString(l))/2
		buf.DrawText(x, y, l, fg)
	}
}

func (r *OverlayRenderer) renderLaunchHint(ctx render.RenderContext, buf *render.RenderBuffer) {
	hint := constants.LaunchHint
	x := ctx.FieldX + (ctx.FieldCols-utf8.RuneCountInString(hint))/2
	y := ctx.FieldY + ctx.FieldRows*2/3
	buf.DrawText(x, y, hint, render.RgbTextMuted)
}

func drawBorder(buf *render.RenderBuffer, x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	fg, bg := render.RgbOverlayBorder, render.RgbOverlayBg

	buf.SetWithBg(x, y, '╔', fg, bg)
	buf.SetWithBg(x+w-1, y, '╗', fg, bg)
	buf.SetWithBg(x, y+h-1, '╚', fg, bg)
	buf.SetWithBg(x+w-1, y+h-1, '╝', fg, bg)

	for i := 1; i < w-1; i++ {
		buf.SetWithBg(x+i, y, '═', fg, bg)
		buf.SetWithBg(x+i, y+h-1, '═', fg, bg)
	}
	for i := 1; i < h-1; i++ {
		buf.SetWithBg(x, y+i, '║', fg, bg)
		buf.SetWithBg(x+w-1, y+i, '║', fg, bg)
	}
}
