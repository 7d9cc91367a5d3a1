package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Caizj-lg/block-breaker-game/components"
)

// Fixed UI colors, resolved from the shared palette
var (
	RgbBackground = components.ColorBackground.RGB()
	RgbHeader     = components.ColorHeader.RGB()
	RgbText       = components.ColorText.RGB()
	RgbTextMuted  = components.ColorTextMuted.RGB()
	RgbHeart      = components.ColorHeart.RGB()

	RgbOverlayBg     = RGB{R: 13, G: 13, B: 26}
	RgbOverlayBorder = components.ColorPaddle.RGB()
)

// Palette resolves a semantic color slot to RGB
func Palette(c components.Color) RGB {
	return c.RGB()
}

// Fade blends a palette color toward the background by alpha
func Fade(c components.Color, alpha float64) RGB {
	return RgbBackground.Blend(c.RGB(), alpha)
}

// ToTcell converts to a tcell truecolor value
func ToTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
