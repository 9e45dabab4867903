package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Slider track characters
const (
	sliderFull  = '█'
	sliderHalf  = '▌'
	sliderEmpty = '░'
)

// Slider draws a labeled horizontal slider: "mass  [████░░░░] 10.0 kg".
// value is clamped into [min, max] for display; labelW fixes the label
// column so stacked sliders align.
func (r Region) Slider(x, y, w, labelW int, label string, value, min, max float64, unit string, fg, track tcell.Style) {
	if y < 0 || y >= r.H || w < labelW+8 {
		return
	}

	r.Text(x, y, truncatePad(label, labelW), fg)

	pct := 0.0
	if max > min {
		pct = (value - min) / (max - min)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	readout := fmt.Sprintf(" %.4g %s", value, unit)
	barW := w - labelW - runewidth.StringWidth(readout) - 2
	if barW < 1 {
		barW = 1
	}

	barX := x + labelW
	r.Cell(barX, y, '[', fg)
	filled := int(float64(barW) * pct)
	remainder := float64(barW)*pct - float64(filled)
	for i := 0; i < barW; i++ {
		var ch rune
		switch {
		case i < filled:
			ch = sliderFull
		case i == filled && remainder >= 0.5:
			ch = sliderHalf
		default:
			ch = sliderEmpty
		}
		style := track
		if i < filled {
			style = fg
		}
		r.Cell(barX+1+i, y, ch, style)
	}
	r.Cell(barX+1+barW, y, ']', fg)
	r.Text(barX+2+barW, y, readout, fg)
}

// truncatePad fits s into exactly w display columns
func truncatePad(s string, w int) string {
	s = runewidth.Truncate(s, w, "…")
	return runewidth.FillRight(s, w)
}
