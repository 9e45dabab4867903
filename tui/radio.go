package tui

import "github.com/gdamore/tcell/v2"

// RadioState represents a quiz option indicator
type RadioState uint8

const (
	RadioOff     RadioState = iota // ( )
	RadioOn                        // (●)
	RadioCorrect                   // (✓)
	RadioWrong                     // (✗)
)

// Radio draws a radio-button indicator followed by its option text
func (r Region) Radio(x, y int, state RadioState, text string, style tcell.Style) {
	if x < 0 || x+2 >= r.W || y < 0 || y >= r.H {
		return
	}
	var ch rune
	switch state {
	case RadioOn:
		ch = '●'
	case RadioCorrect:
		ch = '✓'
	case RadioWrong:
		ch = '✗'
	default:
		ch = ' '
	}
	r.Cell(x, y, '(', style)
	r.Cell(x+1, y, ch, style)
	r.Cell(x+2, y, ')', style)
	r.Text(x+4, y, text, style)
}
