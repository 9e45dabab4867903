package tui

import "github.com/gdamore/tcell/v2"

// LineGlyph picks a line-drawing rune for the dominant direction of the
// segment from (x0, y0) to (x1, y1) in cell coordinates
func LineGlyph(x0, y0, x1, y1 int) rune {
	dx := x1 - x0
	dy := y1 - y0
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case dx >= 2*dy:
		return '─'
	case dy >= 2*dx:
		return '│'
	case (x1-x0 > 0) == (y1-y0 > 0):
		return '╲'
	default:
		return '╱'
	}
}

// Line traces a straight line between two cells via Bresenham, writing the
// given rune at each step. Out-of-region cells are clipped by Cell, so
// partially visible segments draw their visible portion.
func (r Region) Line(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	dx := x1 - x0
	dy := y1 - y0
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	err := absDx - absDy
	x, y := x0, y0
	steps := max(absDx, absDy)

	for i := 0; i <= steps; i++ {
		r.Cell(x, y, ch, style)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}
