package components

// ItemType selects the power-up granted on catch
type ItemType int

const (
	// ItemSplit doubles every free ball
	ItemSplit ItemType = iota
	// ItemScatter fans five new balls upward from the paddle
	ItemScatter
)

func (t ItemType) String() string {
	switch t {
	case ItemSplit:
		return "split"
	case ItemScatter:
		return "scatter"
	default:
		return "unknown"
	}
}

// Glyph is the single-character label drawn on the item
func (t ItemType) Glyph() rune {
	if t == ItemScatter {
		return 'W'
	}
	return 'S'
}

// Color returns the item tint, also used for its pickup burst
func (t ItemType) Color() Color {
	if t == ItemScatter {
		return ColorItemScatter
	}
	return ColorItemSplit
}

// Item is a falling power-up, positioned at its center
type Item struct {
	X, Y float64
	Type ItemType
}
