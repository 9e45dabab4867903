package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Text renders text at position, truncating at the region edge. Returns the
// column after the last drawn rune. Wide runes advance by their display width.
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.H {
		return x
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			w = 1
		}
		if col >= r.W {
			break
		}
		if col >= 0 {
			r.Cell(col, y, ch, style)
		}
		col += w
	}
	return col
}

// TextCenter renders text centered on the row
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	x := (r.W - runewidth.StringWidth(s)) / 2
	r.Text(x, y, s, style)
}

// TextRight renders text right-aligned on the row
func (r Region) TextRight(y int, s string, style tcell.Style) {
	x := r.W - runewidth.StringWidth(s)
	r.Text(x, y, s, style)
}

// TextBlock renders wrapped text within region bounds, returns the number of
// lines rendered
func (r Region) TextBlock(x, y int, text string, style tcell.Style) int {
	if x >= r.W || y >= r.H || text == "" {
		return 0
	}

	availW := r.W - x
	if availW < 1 {
		return 0
	}

	lines := WrapText(text, availW)
	rendered := 0

	for i, line := range lines {
		lineY := y + i
		if lineY >= r.H {
			break
		}
		r.Text(x, lineY, line, style)
		rendered++
	}

	return rendered
}

// WrapText wraps text at word boundaries to fit width. Width is measured in
// display columns so wide runes count double, matching the advance Text uses.
// Returns a slice of lines, each no wider than width.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	lineStart := 0
	lineW := 0
	lastSpace := -1

	for i := 0; i < len(runes); i++ {
		if runes[i] == ' ' {
			lastSpace = i
		}

		w := runewidth.RuneWidth(runes[i])
		if w == 0 {
			w = 1
		}

		if lineW+w > width && i > lineStart {
			wrapAt := i
			if lastSpace > lineStart {
				wrapAt = lastSpace
			}

			lines = append(lines, string(runes[lineStart:wrapAt]))

			if wrapAt < len(runes) && runes[wrapAt] == ' ' {
				lineStart = wrapAt + 1
			} else {
				lineStart = wrapAt
			}
			lastSpace = -1

			lineW = 0
			for j := lineStart; j <= i; j++ {
				jw := runewidth.RuneWidth(runes[j])
				if jw == 0 {
					jw = 1
				}
				lineW += jw
			}
			continue
		}

		lineW += w
	}

	if lineStart < len(runes) {
		lines = append(lines, string(runes[lineStart:]))
	}

	if len(lines) == 0 {
		lines = []string{""}
	}

	return lines
}
