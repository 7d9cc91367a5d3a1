package components

import "github.com/Caizj-lg/block-breaker-game/core"

// Color is a semantic palette slot, adapters map it to concrete colors
type Color uint8

const (
	ColorRow0 Color = iota
	ColorRow1
	ColorRow2
	ColorRow3
	ColorRow4
	ColorRow5
	ColorRow6
	ColorRow7
	ColorWall
	ColorPaddle
	ColorBall
	ColorItemSplit
	ColorItemScatter
	ColorBackground
	ColorHeader
	ColorText
	ColorTextMuted
	ColorHeart
)

// RowPaletteSize is the number of colors cycled across block rows
const RowPaletteSize = 8

// ColorRow returns the palette slot for a block row
func ColorRow(row int) Color {
	if row < 0 {
		row = -row
	}
	return ColorRow0 + Color(row%RowPaletteSize)
}

var colorHex = [...]string{
	ColorRow0:        "#ff6b6b",
	ColorRow1:        "#feca57",
	ColorRow2:        "#48dbfb",
	ColorRow3:        "#1dd1a1",
	ColorRow4:        "#ff9ff3",
	ColorRow5:        "#54a0ff",
	ColorRow6:        "#5f27cd",
	ColorRow7:        "#ff9f43",
	ColorWall:        "#4a4a5e",
	ColorPaddle:      "#00d4ff",
	ColorBall:        "#ffffff",
	ColorItemSplit:   "#a855f7",
	ColorItemScatter: "#ec4899",
	ColorBackground:  "#1a1a2e",
	ColorHeader:      "#0d0d1a",
	ColorText:        "#ffffff",
	ColorTextMuted:   "#888899",
	ColorHeart:       "#ff6b6b",
}

// Hex returns the CSS hex form of the color
func (c Color) Hex() string {
	if int(c) < len(colorHex) {
		return colorHex[c]
	}
	return "#ffffff"
}

// RGB returns the color as 8-bit channels
func (c Color) RGB() core.RGB {
	rgb, ok := core.ParseHex(c.Hex())
	if !ok {
		return core.RGBWhite
	}
	return rgb
}
