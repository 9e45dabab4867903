package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/newton-tutor/app"
	"github.com/lixenwraith/newton-tutor/diagram"
	"github.com/lixenwraith/newton-tutor/render"
	"github.com/lixenwraith/newton-tutor/slides"
	"github.com/lixenwraith/newton-tutor/tui"
	"github.com/lixenwraith/newton-tutor/vmath"
)

// DiagramRenderer rasterizes the free-body diagram onto the left side of a
// lab slide. The diagram itself is built in square canvas units; this layer
// maps units onto cells at two units per cell row to undo the terminal's
// tall cell aspect.
type DiagramRenderer struct {
	appCtx *app.Context
}

// NewDiagramRenderer creates the diagram layer
func NewDiagramRenderer(ctx *app.Context) *DiagramRenderer {
	return &DiagramRenderer{appCtx: ctx}
}

func (r *DiagramRenderer) Render(ctx render.Context, buf *render.Buffer) {
	var sc diagram.Scenario
	var fs diagram.ForceSet
	var contactLost bool

	switch r.appCtx.Deck.Current().Kind {
	case slides.KindHorizontalLab:
		res, set := r.appCtx.HorizontalLab()
		sc, fs, contactLost = diagram.Horizontal(), set, res.ContactLost
	case slides.KindInclineLab:
		_, set, scenario := r.appCtx.InclineLab()
		sc, fs = scenario, set
	default:
		return
	}

	// Left 60% of the frame interior, below the intro strip, above the sliders
	region := diagramRegion(buf, ctx)
	if region.W < 10 || region.H < 6 {
		return
	}

	size := diagram.Size{W: float64(region.W), H: float64(region.H * 2)}
	d := diagram.Build(sc, fs, size)
	r.raster(region, d)

	if contactLost {
		th := r.appCtx.Theme
		region.TextCenter(region.H-1, "block leaves the surface!", th.Style(th.Wrong).Bold(true))
	}
}

// diagramRegion is shared with the controls renderer so the two layers split
// the lab slide consistently
func diagramRegion(buf *render.Buffer, ctx render.Context) tui.Region {
	root := tui.NewRegion(buf, 0, 0, ctx.Width, ctx.Height)
	w := (ctx.Width - 4) * 3 / 5
	return root.Sub(2, 5, w, ctx.Height-12)
}

// raster draws the command list into the region
func (r *DiagramRenderer) raster(region tui.Region, d diagram.Drawing) {
	th := r.appCtx.Theme

	for _, s := range d.Surface {
		r.segment(region, s, th.Style(th.Surface))
	}
	for _, s := range d.Block {
		r.segment(region, s, th.Style(th.BlockFg))
	}
	for _, a := range d.Arrows {
		style := th.Style(r.forceColor(a.ID)).Bold(true)
		r.segment(region, a.Shaft, style)
		for _, h := range a.Head {
			x, y := cellOf(h.To)
			region.Cell(x, y, headGlyph(h), style)
		}
		if a.Label != nil {
			x, y := cellOf(a.Label.Pos)
			region.Text(x, y, a.Label.Text, style)
		}
	}
}

// segment traces one drawing segment with a slope-matched glyph
func (r *DiagramRenderer) segment(region tui.Region, s diagram.Segment, style tcell.Style) {
	x0, y0 := cellOf(s.From)
	x1, y1 := cellOf(s.To)
	region.Line(x0, y0, x1, y1, tui.LineGlyph(x0, y0, x1, y1), style)
}

// cellOf maps canvas units to region cells: one cell per unit horizontally,
// one per two units vertically
func cellOf(p vmath.Vec2) (int, int) {
	return int(p.X + 0.5), int(p.Y/2 + 0.5)
}

// headGlyph picks the arrowhead rune from the segment's pointing direction
func headGlyph(s diagram.Segment) rune {
	d := s.From.Sub(s.To) // head segments point back from the tip
	switch {
	case d.Y > 0 && d.Y >= absf(d.X):
		return '▾'
	case d.Y < 0 && -d.Y >= absf(d.X):
		return '▴'
	case d.X > 0:
		return '▸'
	default:
		return '◂'
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (r *DiagramRenderer) forceColor(id diagram.ForceID) tcell.Color {
	th := r.appCtx.Theme
	switch id {
	case diagram.ForceWeight:
		return th.WeightFg
	case diagram.ForceNormal:
		return th.NormalFg
	case diagram.ForceFriction:
		return th.Friction
	default:
		return th.AppliedFg
	}
}
