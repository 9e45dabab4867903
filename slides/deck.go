// Package slides defines the fixed lesson deck and the navigator over it.
// Navigation clamps to the deck bounds and never wraps; there is no
// persistence across sessions.
package slides

// Deck holds a fixed ordered slide list and the current index
type Deck struct {
	slides []Slide
	index  int
}

// NewDeck creates a deck positioned on its first slide
func NewDeck(slides []Slide) *Deck {
	return &Deck{slides: slides}
}

// Count returns the number of slides
func (d *Deck) Count() int {
	return len(d.slides)
}

// Index returns the current slide index
func (d *Deck) Index() int {
	return d.index
}

// Current returns the current slide
func (d *Deck) Current() Slide {
	return d.slides[d.index]
}

// Slide returns the slide at index i
func (d *Deck) Slide(i int) Slide {
	return d.slides[i]
}

// Next advances one slide, clamped at the last index
func (d *Deck) Next() {
	d.Goto(d.index + 1)
}

// Prev moves back one slide, clamped at index 0
func (d *Deck) Prev() {
	d.Goto(d.index - 1)
}

// Goto moves to slide i, clamped to [0, count-1]
func (d *Deck) Goto(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(d.slides)-1 {
		i = len(d.slides) - 1
	}
	d.index = i
}

// First jumps to the first slide
func (d *Deck) First() {
	d.Goto(0)
}

// Last jumps to the last slide
func (d *Deck) Last() {
	d.Goto(len(d.slides) - 1)
}
