package renderers

import (
	"fmt"
	"strings"

	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/render"
)

// StatusBarRenderer draws the header row: score, level and hearts
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Hearts returns the lives display, full hearts first
func Hearts(lives, maxLives int) string {
	lives = min(max(lives, 0), maxLives)
	return strings.Repeat(string(constants.HeartFull), lives) +
		strings.Repeat(string(constants.HeartEmpty), max(maxLives-lives, 0))
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Snap
	y := 0

	buf.FillRect(0, y, ctx.ScreenWidth, constants.HeaderRows, ' ', render.RgbText, render.RgbHeader)

	x := 1
	x += buf.DrawText(x, y, "SCORE ", render.RgbTextMuted)
	buf.DrawText(x, y, fmt.Sprintf("%d", s.Score), render.RgbText)

	level := fmt.Sprintf("LEVEL %d", s.Level)
	buf.DrawText((ctx.ScreenWidth-len(level))/2, y, level, render.RgbText)

	hearts := Hearts(s.Lives, s.MaxLives)
	hx := ctx.ScreenWidth - s.MaxLives - 1
	for i, h := range []rune(hearts) {
		fg := render.RgbHeart
		if h == constants.HeartEmpty {
			fg = render.RgbTextMuted
		}
		buf.SetFgOnly(hx+i, y, h, fg)
	}
}
