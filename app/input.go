package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/newton-tutor/slides"
)

// InputHandler routes terminal events into state mutations. It is the only
// writer of Context state.
type InputHandler struct {
	ctx *Context
}

// NewInputHandler creates the handler over the shared context
func NewInputHandler(ctx *Context) *InputHandler {
	return &InputHandler{ctx: ctx}
}

// HandleEvent processes one terminal event. Returns false when the
// slideshow should exit.
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		h.navigate(-1)
		return true
	case tcell.KeyRight:
		h.navigate(+1)
		return true
	case tcell.KeyHome:
		h.goTo(0)
		return true
	case tcell.KeyEnd:
		h.goTo(h.ctx.Deck.Count() - 1)
		return true
	case tcell.KeyTab:
		h.ctx.cycleFocus(+1)
		return true
	case tcell.KeyBacktab:
		h.ctx.cycleFocus(-1)
		return true
	case tcell.KeyUp:
		h.vertical(-1)
		return true
	case tcell.KeyDown:
		h.vertical(+1)
		return true
	case tcell.KeyEnter:
		h.check()
		return true
	case tcell.KeyRune:
		return h.handleRune(key.Rune())
	}

	return true
}

func (h *InputHandler) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'h':
		h.navigate(-1)
	case 'l':
		h.navigate(+1)
	case 'g':
		h.goTo(0)
	case 'G':
		h.goTo(h.ctx.Deck.Count() - 1)
	case '+', '=', 'k':
		h.vertical(-1)
	case '-', '_', 'j':
		h.vertical(+1)
	case 'c':
		h.check()
	case 'r':
		if h.ctx.Deck.Current().Kind == slides.KindQuiz {
			h.ctx.Quiz.Reset()
		}
	case 'm':
		h.ctx.Sound.ToggleMuted()
	case '1', '2', '3', '4':
		if h.ctx.Deck.Current().Kind == slides.KindQuiz {
			h.ctx.Quiz.Select(h.ctx.quizCursor, int(r-'1'))
		}
	}
	return true
}

// navigate moves delta slides, resetting widget focus on an actual change
func (h *InputHandler) navigate(delta int) {
	h.goTo(h.ctx.Deck.Index() + delta)
}

func (h *InputHandler) goTo(i int) {
	before := h.ctx.Deck.Index()
	h.ctx.Deck.Goto(i)
	if h.ctx.Deck.Index() != before {
		h.ctx.focus = 0
		h.ctx.Sound.PlayNav()
	}
}

// vertical routes ↑/↓ (and j/k, +/-) by slide kind: quiz slides move the
// question cursor, lab slides adjust the focused slider. On labs, up means
// increase.
func (h *InputHandler) vertical(delta int) {
	switch h.ctx.Deck.Current().Kind {
	case slides.KindQuiz:
		h.ctx.moveQuizCursor(delta)
	case slides.KindHorizontalLab, slides.KindInclineLab:
		if h.ctx.adjustFocused(float64(-delta)) {
			h.ctx.Sound.PlayAdjust()
		}
	}
}

// check reveals quiz correctness and plays the pass/fail cue
func (h *InputHandler) check() {
	if h.ctx.Deck.Current().Kind != slides.KindQuiz {
		return
	}
	h.ctx.Quiz.Check()
	if h.ctx.Quiz.CorrectCount() == h.ctx.Quiz.Count() {
		h.ctx.Sound.PlayCorrect()
	} else {
		h.ctx.Sound.PlayWrong()
	}
}
