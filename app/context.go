// Package app owns the mutable slideshow state: the deck position, the lab
// slider values, the quiz selections, and widget focus. Every field has one
// writer, the input handler; renderers read through accessor methods and a
// fresh ForceSet is rebuilt from the sliders on every access, never cached.
package app

import (
	"github.com/lixenwraith/newton-tutor/audio"
	"github.com/lixenwraith/newton-tutor/diagram"
	"github.com/lixenwraith/newton-tutor/physics"
	"github.com/lixenwraith/newton-tutor/quiz"
	"github.com/lixenwraith/newton-tutor/slides"
	"github.com/lixenwraith/newton-tutor/tui"
	"github.com/lixenwraith/newton-tutor/vmath"
)

// Context is the application state shared between the input handler and the
// renderers
type Context struct {
	Deck  *slides.Deck
	Quiz  *quiz.Quiz
	Sound *audio.SoundManager
	Theme tui.Theme

	// Per-slide slider values keyed by slide index then ParamSpec.Key
	params []map[string]float64

	focus      int // focused slider on the current lab slide
	quizCursor int // highlighted quiz question
}

// NewContext creates the application state with every slider at its default
func NewContext(deckSlides []slides.Slide, questions []quiz.Question, sound *audio.SoundManager) *Context {
	ctx := &Context{
		Deck:   slides.NewDeck(deckSlides),
		Quiz:   quiz.New(questions),
		Sound:  sound,
		Theme:  tui.DefaultTheme,
		params: make([]map[string]float64, len(deckSlides)),
	}

	for i, s := range deckSlides {
		if len(s.Params) == 0 {
			continue
		}
		values := make(map[string]float64, len(s.Params))
		for _, p := range s.Params {
			values[p.Key] = p.Default
		}
		ctx.params[i] = values
	}

	return ctx
}

// Param returns the live value for a slider on the current slide, falling
// back to the ParamSpec default if the key is unknown
func (c *Context) Param(key string) float64 {
	if v, ok := c.params[c.Deck.Index()][key]; ok {
		return v
	}
	for _, p := range c.Deck.Current().Params {
		if p.Key == key {
			return p.Default
		}
	}
	return 0
}

// Focus returns the focused slider index on the current slide
func (c *Context) Focus() int {
	return c.focus
}

// QuizCursor returns the highlighted quiz question index
func (c *Context) QuizCursor() int {
	return c.quizCursor
}

// cycleFocus advances slider focus by delta, wrapping within the current
// slide's parameter list
func (c *Context) cycleFocus(delta int) {
	n := len(c.Deck.Current().Params)
	if n == 0 {
		return
	}
	c.focus = ((c.focus+delta)%n + n) % n
}

// adjustFocused steps the focused slider by delta steps, clamped to its range
func (c *Context) adjustFocused(delta float64) bool {
	s := c.Deck.Current()
	if c.focus >= len(s.Params) {
		return false
	}
	p := s.Params[c.focus]
	values := c.params[c.Deck.Index()]

	old := values[p.Key]
	values[p.Key] = vmath.Clamp(old+delta*p.Step, p.Min, p.Max)
	return values[p.Key] != old
}

// moveQuizCursor shifts the highlighted question, clamped to the question list
func (c *Context) moveQuizCursor(delta int) {
	c.quizCursor = vmath.ClampInt(c.quizCursor+delta, 0, c.Quiz.Count()-1)
}

// HorizontalLab resolves the current horizontal-lab sliders into forces and
// the ForceSet to draw
func (c *Context) HorizontalLab() (physics.HorizontalResult, diagram.ForceSet) {
	mass := c.Param(slides.ParamMass)
	force := c.Param(slides.ParamForce)
	angle := c.Param(slides.ParamAngle)
	mu := c.Param(slides.ParamMu)

	r := physics.ResolveHorizontal(mass, force, angle, mu)

	fs := diagram.ForceSet{
		Weight:   r.Weight,
		Normal:   r.Normal,
		Friction: r.Friction,
	}
	if force > 0 {
		fs.Applied = &diagram.AppliedForce{Magnitude: force, AngleDeg: angle}
	}
	return r, fs
}

// InclineLab resolves the current incline-lab sliders into forces and the
// ForceSet to draw
func (c *Context) InclineLab() (physics.InclineResult, diagram.ForceSet, diagram.Scenario) {
	mass := c.Param(slides.ParamMass)
	incline := c.Param(slides.ParamInclin)
	mu := c.Param(slides.ParamMu)

	r := physics.ResolveIncline(mass, incline, mu)

	fs := diagram.ForceSet{
		Weight:   r.Weight,
		Normal:   r.Normal,
		Friction: r.Friction,
	}
	return r, fs, diagram.Inclined(incline)
}
