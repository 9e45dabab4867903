package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/newton-tutor/app"
	"github.com/lixenwraith/newton-tutor/quiz"
	"github.com/lixenwraith/newton-tutor/render"
	"github.com/lixenwraith/newton-tutor/slides"
	"github.com/lixenwraith/newton-tutor/tui"
)

// QuizRenderer paints the question list with radio indicators and, after a
// check, the per-question verdicts and the revealed score
type QuizRenderer struct {
	appCtx *app.Context
}

// NewQuizRenderer creates the quiz layer
func NewQuizRenderer(ctx *app.Context) *QuizRenderer {
	return &QuizRenderer{appCtx: ctx}
}

func (r *QuizRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if r.appCtx.Deck.Current().Kind != slides.KindQuiz {
		return
	}

	th := r.appCtx.Theme
	q := r.appCtx.Quiz
	region := tui.NewRegion(buf, 3, 4, ctx.Width-6, ctx.Height-6)

	y := 0
	for i := 0; i < q.Count(); i++ {
		if y >= region.H {
			break
		}
		question := q.Question(i)
		focused := i == r.appCtx.QuizCursor()

		promptStyle := th.Style(th.Fg)
		if focused {
			promptStyle = th.Style(th.FocusFg).Bold(true)
			region.Text(0, y, "▶", promptStyle)
		}
		region.Text(2, y, fmt.Sprintf("%d. %s", i+1, question.Prompt), promptStyle)
		y++

		verdict := q.ResultFor(i)
		for j, opt := range question.Options {
			if y >= region.H {
				break
			}
			state, style := r.optionLook(q, i, j, verdict)
			region.Radio(5, y, state, fmt.Sprintf("%d) %s", j+1, opt), style)
			y++
		}
		y++
	}

	if q.Revealed() && y < region.H {
		score := fmt.Sprintf("%d / %d correct", q.CorrectCount(), q.Count())
		style := th.Style(th.Wrong)
		if q.CorrectCount() == q.Count() {
			style = th.Style(th.Correct)
		}
		region.Text(2, y, score, style.Bold(true))
	}
}

// optionLook maps one option to its indicator state and style. Before a
// check only the selection shows; after, the selected option turns into a
// pass/fail verdict and the correct answer is highlighted for failed rows.
func (r *QuizRenderer) optionLook(q *quiz.Quiz, i, j int, verdict quiz.Result) (tui.RadioState, tcell.Style) {
	th := r.appCtx.Theme
	selected := q.Selected(i) == j
	base := th.Style(th.Dim(th.Fg, 0.25))

	if verdict == quiz.ResultHidden || verdict == quiz.ResultSkipped {
		if selected {
			return tui.RadioOn, th.Style(th.Accent)
		}
		return tui.RadioOff, base
	}

	correct := q.Question(i).Correct == j
	switch {
	case selected && verdict == quiz.ResultPass:
		return tui.RadioCorrect, th.Style(th.Correct)
	case selected:
		return tui.RadioWrong, th.Style(th.Wrong)
	case correct:
		// Reveal the answer the learner missed
		return tui.RadioCorrect, th.Style(th.Dim(th.Correct, 0.3))
	default:
		return tui.RadioOff, base
	}
}
