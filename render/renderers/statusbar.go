package renderers

import (
	"fmt"

	"github.com/lixenwraith/newton-tutor/app"
	"github.com/lixenwraith/newton-tutor/render"
	"github.com/lixenwraith/newton-tutor/slides"
	"github.com/lixenwraith/newton-tutor/tui"
)

// StatusBarRenderer paints the bottom row: slide position, contextual key
// hints, and the progress dots
type StatusBarRenderer struct {
	appCtx *app.Context
}

// NewStatusBarRenderer creates the status bar layer
func NewStatusBarRenderer(ctx *app.Context) *StatusBarRenderer {
	return &StatusBarRenderer{appCtx: ctx}
}

func (r *StatusBarRenderer) Render(ctx render.Context, buf *render.Buffer) {
	th := r.appCtx.Theme
	deck := r.appCtx.Deck
	region := tui.NewRegion(buf, 0, ctx.Height-1, ctx.Width, 1)

	region.Fill(th.Style(th.HintFg))

	pos := fmt.Sprintf(" %d/%d ", deck.Index()+1, deck.Count())
	region.Text(0, 0, pos, th.Style(th.Accent))

	region.Text(len(pos)+1, 0, r.hints(), th.Style(th.HintFg))

	// Progress dots, current slide emphasized
	dots := make([]rune, deck.Count())
	for i := range dots {
		dots[i] = '·'
		if i == deck.Index() {
			dots[i] = '●'
		}
	}
	region.TextRight(0, string(dots)+" ", th.Style(th.Accent))
}

// hints returns the key help for the current slide kind
func (r *StatusBarRenderer) hints() string {
	switch r.appCtx.Deck.Current().Kind {
	case slides.KindHorizontalLab, slides.KindInclineLab:
		return "←/→ slides · Tab focus · +/- adjust · m mute · q quit"
	case slides.KindQuiz:
		return "←/→ slides · ↑/↓ question · 1-4 answer · Enter check · r reset · q quit"
	default:
		return "←/→ slides · g/G first/last · m mute · q quit"
	}
}
