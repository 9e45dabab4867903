// Package tui provides Region-windowed widgets over the render buffer:
// text layout, boxes, the parameter slider, and the quiz radio indicator.
// All widget coordinates are relative to the region origin and clipped to
// its bounds.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/newton-tutor/render"
)

// Region represents a rectangular area within a cell buffer.
// All coordinates are relative to the region's origin.
type Region struct {
	Cells  []render.Cell
	TotalW int // total width of the underlying cell buffer
	X, Y   int // absolute position in the cell buffer
	W, H   int // region dimensions
}

// NewRegion creates a region windowing the buffer at absolute bounds
func NewRegion(buf *render.Buffer, x, y, w, h int) Region {
	return Region{
		Cells:  buf.Cells(),
		TotalW: buf.Width(),
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to the parent,
// clipped to the parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = render.Cell{Rune: ch, Style: style}
	}
}

// Fill fills the entire region with the given style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}
