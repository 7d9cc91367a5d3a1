package render

import "github.com/gdamore/tcell/v2"

// RenderBuffer is a compositor of cells with touched tracking
// Untouched cells receive the default background at flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbText, Bg: DefaultBgRGB}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer width and height
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetFgOnly writes rune and foreground while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetBgOnly updates the background color while preserving existing rune/foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// FillRect paints a rectangle of cells with one rune and colors
func (b *RenderBuffer) FillRect(x, y, w, h int, r rune, fg, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetWithBg(col, row, r, fg, bg)
		}
	}
}

// DrawText writes s starting at (x, y) keeping backgrounds, returns columns used
func (b *RenderBuffer) DrawText(x, y int, s string, fg RGB) int {
	n := 0
	for _, r := range s {
		b.SetFgOnly(x+n, y, r, fg)
		n++
	}
	return n
}

// finalize sets default background to untouched cells before flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = DefaultBgRGB
		}
	}
}

// FlushToScreen writes the buffer to a tcell screen; caller shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(ToTcell(c.Fg)).Background(ToTcell(c.Bg))
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
