package renderers

import (
	"fmt"

	"github.com/lixenwraith/newton-tutor/app"
	"github.com/lixenwraith/newton-tutor/render"
	"github.com/lixenwraith/newton-tutor/slides"
	"github.com/lixenwraith/newton-tutor/tui"
)

const sliderLabelW = 10

// ControlsRenderer paints the slider stack and the numeric readout panel on
// lab slides
type ControlsRenderer struct {
	appCtx *app.Context
}

// NewControlsRenderer creates the lab controls layer
func NewControlsRenderer(ctx *app.Context) *ControlsRenderer {
	return &ControlsRenderer{appCtx: ctx}
}

func (r *ControlsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	slide := r.appCtx.Deck.Current()
	if slide.Kind != slides.KindHorizontalLab && slide.Kind != slides.KindInclineLab {
		return
	}

	r.sliders(ctx, buf, slide)
	r.readout(ctx, buf, slide)
}

// sliders draws one slider row per parameter at the bottom of the frame
func (r *ControlsRenderer) sliders(ctx render.Context, buf *render.Buffer, slide slides.Slide) {
	th := r.appCtx.Theme
	top := ctx.Height - 3 - len(slide.Params)
	region := tui.NewRegion(buf, 2, top, ctx.Width-5, len(slide.Params))

	for i, p := range slide.Params {
		fg := th.Style(th.Fg)
		if i == r.appCtx.Focus() {
			fg = th.Style(th.FocusFg).Bold(true)
			region.Text(0, i, "▶", fg)
		}
		track := th.Style(th.Dim(th.Accent, 0.55))
		region.Slider(2, i, region.W-2, sliderLabelW, p.Label, r.appCtx.Param(p.Key), p.Min, p.Max, p.Unit, fg, track)
	}
}

// readout draws the resolved forces next to the diagram
func (r *ControlsRenderer) readout(ctx render.Context, buf *render.Buffer, slide slides.Slide) {
	th := r.appCtx.Theme

	dr := diagramRegion(buf, ctx)
	x := dr.X + dr.W + 2
	region := tui.NewRegion(buf, x, dr.Y, ctx.Width-x-2, dr.H)
	if region.W < 18 {
		return
	}

	region.BoxTitled(tui.LineSingle, "forces", th.Style(th.Border), th.Style(th.Accent))
	inner := region.Inset(1).Sub(1, 0, region.W-4, region.H-2)

	type row struct {
		label string
		value float64
		unit  string
	}
	var rows []row

	switch slide.Kind {
	case slides.KindHorizontalLab:
		res, _ := r.appCtx.HorizontalLab()
		rows = []row{
			{"weight W", res.Weight, "N"},
			{"normal N", res.Normal, "N"},
			{"friction f", res.Friction, "N"},
			{"push Fx", res.Fx, "N"},
			{"push Fy", res.Fy, "N"},
			{"net force", res.Net, "N"},
			{"accel a", res.Accel, "m/s²"},
		}
	case slides.KindInclineLab:
		res, _, _ := r.appCtx.InclineLab()
		rows = []row{
			{"weight W", res.Weight, "N"},
			{"normal N", res.Normal, "N"},
			{"downslope", res.Driving, "N"},
			{"friction f", res.Friction, "N"},
			{"net force", res.Net, "N"},
			{"accel a", res.Accel, "m/s²"},
		}
	}

	for i, rw := range rows {
		if i >= inner.H {
			break
		}
		inner.Text(0, i, rw.label, th.Style(th.Fg))
		inner.TextRight(i, fmt.Sprintf("%8.3f %s", rw.value, rw.unit), th.Style(th.Accent))
	}
}
