package renderers

import (
	"strings"

	"github.com/lixenwraith/newton-tutor/app"
	"github.com/lixenwraith/newton-tutor/render"
	"github.com/lixenwraith/newton-tutor/slides"
	"github.com/lixenwraith/newton-tutor/tui"
)

// SlideRenderer paints the slide body text. Text slides get the full frame;
// lab and quiz slides get a short intro strip above their interactive area.
type SlideRenderer struct {
	appCtx *app.Context
}

// NewSlideRenderer creates the body text layer
func NewSlideRenderer(ctx *app.Context) *SlideRenderer {
	return &SlideRenderer{appCtx: ctx}
}

func (r *SlideRenderer) Render(ctx render.Context, buf *render.Buffer) {
	th := r.appCtx.Theme
	slide := r.appCtx.Deck.Current()

	body := tui.NewRegion(buf, 3, 2, ctx.Width-6, ctx.Height-4)
	if slide.Kind != slides.KindText {
		// Intro strip only; the interactive layers own the rest
		body = body.Sub(0, 0, body.W, 2)
	}

	y := 0
	for _, para := range slide.Body {
		if y >= body.H {
			break
		}
		if para == "" {
			y++
			continue
		}

		x := 0
		if strings.HasPrefix(para, "• ") {
			body.Text(0, y, "•", th.Style(th.Accent))
			para = strings.TrimPrefix(para, "• ")
			x = 2
		}
		y += body.TextBlock(x, y, para, th.Style(th.Fg))
	}
}
