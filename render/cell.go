package render

import "github.com/Caizj-lg/block-breaker-game/core"

// RGB is the renderer's color type, shared with core
type RGB = core.RGB

// Cell is one terminal position in the render buffer
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// DefaultBgRGB is the default background color
var DefaultBgRGB = RgbBackground
