package systems

import (
	"github.com/Caizj-lg/block-breaker-game/components"
	"github.com/Caizj-lg/block-breaker-game/config"
	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/vmath"
)

// RowsForLevel returns the grid height, one extra row every two levels up to the cap
func RowsForLevel(level int, cfg config.Blocks) int {
	return min(cfg.Rows+level/2, cfg.MaxRows)
}

// WallsForLevel returns the number of wall placements attempted
func WallsForLevel(level int) int {
	return min(constants.WallBaseCount+level, constants.MaxWalls)
}

// Layout builds the block grid for level, centered in width
// Wall positions are drawn from rng; a duplicate draw is skipped, so fewer walls than requested is valid
func Layout(level int, width float64, cfg config.Blocks, rng *vmath.FastRand) []components.Block {
	rows := RowsForLevel(level, cfg)
	cols := cfg.Cols

	gridWidth := float64(cols)*(cfg.Width+cfg.Padding) - cfg.Padding
	offsetX := (width - gridWidth) / 2

	blocks := make([]components.Block, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			blocks = append(blocks, components.Block{
				X:      offsetX + float64(col)*(cfg.Width+cfg.Padding),
				Y:      cfg.TopOffset + float64(row)*(cfg.Height+cfg.Padding),
				Width:  cfg.Width,
				Height: cfg.Height,
				Color:  components.ColorRow(row),
				Hits:   constants.NormalBlockHits,
			})
		}
	}

	maxRow := min(rows-2, constants.WallMaxRow)
	walls := WallsForLevel(level)
	for i := 0; i < walls; i++ {
		row := rng.RangeInt(constants.WallMinRow, maxRow)
		col := rng.RangeInt(1, cols-2)
		idx := row*cols + col
		if idx < 0 || idx >= len(blocks) || blocks[idx].IsWall {
			continue
		}
		blocks[idx].IsWall = true
		blocks[idx].Color = components.ColorWall
		blocks[idx].Hits = components.HitsIndestructible
	}

	return blocks
}
