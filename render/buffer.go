package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell in the compositor buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a compositor backed by a Cell array with dirty tracking.
// Renderers write cells between Clear and Flush; Touched lets callers
// probe whether a layer drew into a given cell.
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
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

// Clear resets all cells to empty
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
		b.touched[i] = false
	}
}

// Width returns buffer width in cells
func (b *Buffer) Width() int {
	return b.width
}

// Height returns buffer height in cells
func (b *Buffer) Height() int {
	return b.height
}

// Cells exposes the backing slice for zero-copy Region windows
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// InBounds returns true if (x, y) is inside the buffer
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell with bounds checking and marks it dirty
func (b *Buffer) Set(x, y int, ch rune, style tcell.Style) {
	if !b.InBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: ch, Style: style}
	b.touched[idx] = true
}

// Get returns the cell at (x, y), zero value out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Touched returns true if the cell was written since the last Clear
func (b *Buffer) Touched(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.touched[y*b.width+x]
}

// Flush writes the buffer contents to the tcell screen and shows the frame.
// Untouched cells are emitted as spaces so stale glyphs never survive a
// frame without requiring a screen-side clear.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
