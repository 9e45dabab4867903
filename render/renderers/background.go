// Package renderers contains the slide renderers registered on the
// orchestrator: background frame, slide body, force diagram, lab controls,
// quiz list, and status bar. Each renderer reads the shared application
// state and paints one layer of the frame.
package renderers

import (
	"github.com/lixenwraith/newton-tutor/app"
	"github.com/lixenwraith/newton-tutor/render"
	"github.com/lixenwraith/newton-tutor/tui"
)

// BackgroundRenderer fills the frame and draws the outer border with the
// current slide title
type BackgroundRenderer struct {
	appCtx *app.Context
}

// NewBackgroundRenderer creates the background layer
func NewBackgroundRenderer(ctx *app.Context) *BackgroundRenderer {
	return &BackgroundRenderer{appCtx: ctx}
}

func (r *BackgroundRenderer) Render(ctx render.Context, buf *render.Buffer) {
	th := r.appCtx.Theme
	root := tui.NewRegion(buf, 0, 0, ctx.Width, ctx.Height)

	root.Fill(th.Style(th.Fg))

	// Frame leaves the bottom row to the status bar
	frame := root.Sub(0, 0, ctx.Width, ctx.Height-1)
	frame.BoxTitled(tui.LineRounded, r.appCtx.Deck.Current().Title,
		th.Style(th.Border), th.Style(th.Title).Bold(true))
}
