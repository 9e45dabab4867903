package tui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme defines semantic colors for the slideshow
type Theme struct {
	Bg        tcell.Color
	Fg        tcell.Color
	Title     tcell.Color
	Accent    tcell.Color
	Border    tcell.Color
	HintFg    tcell.Color
	FocusFg   tcell.Color
	Correct   tcell.Color
	Wrong     tcell.Color
	Surface   tcell.Color
	BlockFg   tcell.Color
	WeightFg  tcell.Color
	NormalFg  tcell.Color
	Friction  tcell.Color
	AppliedFg tcell.Color
}

// DefaultTheme provides reasonable defaults on a dark background
var DefaultTheme = Theme{
	Bg:        tcell.NewRGBColor(18, 20, 28),
	Fg:        tcell.NewRGBColor(200, 200, 200),
	Title:     tcell.NewRGBColor(255, 255, 255),
	Accent:    tcell.NewRGBColor(120, 180, 250),
	Border:    tcell.NewRGBColor(70, 90, 110),
	HintFg:    tcell.NewRGBColor(110, 130, 140),
	FocusFg:   tcell.NewRGBColor(250, 210, 100),
	Correct:   tcell.NewRGBColor(90, 210, 110),
	Wrong:     tcell.NewRGBColor(240, 90, 90),
	Surface:   tcell.NewRGBColor(130, 120, 100),
	BlockFg:   tcell.NewRGBColor(220, 220, 230),
	WeightFg:  tcell.NewRGBColor(240, 130, 130),
	NormalFg:  tcell.NewRGBColor(130, 200, 240),
	Friction:  tcell.NewRGBColor(240, 190, 110),
	AppliedFg: tcell.NewRGBColor(160, 240, 150),
}

// Style returns a default-background style with the given foreground
func (t Theme) Style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(t.Bg)
}

// Dim blends the color toward the theme background by factor in [0,1].
// Blending happens in the perceptual Luv space so dimmed arrows and hints
// keep their hue instead of drifting gray.
func (t Theme) Dim(c tcell.Color, factor float64) tcell.Color {
	return blend(c, t.Bg, factor)
}

// Emphasize blends the color toward white by factor in [0,1]
func (t Theme) Emphasize(c tcell.Color, factor float64) tcell.Color {
	return blend(c, tcell.NewRGBColor(255, 255, 255), factor)
}

func blend(from, to tcell.Color, factor float64) tcell.Color {
	fr, fg, fb := from.RGB()
	tr, tg, tb := to.RGB()
	a := colorful.Color{R: float64(fr) / 255, G: float64(fg) / 255, B: float64(fb) / 255}
	b := colorful.Color{R: float64(tr) / 255, G: float64(tg) / 255, B: float64(tb) / 255}
	m := a.BlendLuv(b, factor).Clamped()
	return tcell.NewRGBColor(int32(m.R*255+0.5), int32(m.G*255+0.5), int32(m.B*255+0.5))
}
