package slides

import "testing"

// TestNextClampsAtLast verifies Next at the last index is a no-op, never a wrap
func TestNextClampsAtLast(t *testing.T) {
	d := NewDeck(Lesson())
	d.Last()
	last := d.Index()

	d.Next()

	if d.Index() != last {
		t.Errorf("Expected index %d after Next at end, got %d", last, d.Index())
	}
}

// TestPrevClampsAtFirst verifies Prev at index 0 is a no-op, never a wrap
func TestPrevClampsAtFirst(t *testing.T) {
	d := NewDeck(Lesson())

	d.Prev()

	if d.Index() != 0 {
		t.Errorf("Expected index 0 after Prev at start, got %d", d.Index())
	}
}

// TestGotoClamps verifies out-of-range jumps clamp to the deck bounds
func TestGotoClamps(t *testing.T) {
	d := NewDeck(Lesson())

	d.Goto(99)
	if d.Index() != d.Count()-1 {
		t.Errorf("Expected clamp to %d, got %d", d.Count()-1, d.Index())
	}

	d.Goto(-5)
	if d.Index() != 0 {
		t.Errorf("Expected clamp to 0, got %d", d.Index())
	}

	d.Goto(2)
	if d.Index() != 2 {
		t.Errorf("Expected index 2, got %d", d.Index())
	}
}

// TestNavigationWalk verifies sequential navigation visits every slide in order
func TestNavigationWalk(t *testing.T) {
	d := NewDeck(Lesson())

	for i := 0; i < d.Count(); i++ {
		if d.Index() != i {
			t.Fatalf("Expected index %d during walk, got %d", i, d.Index())
		}
		d.Next()
	}
	if d.Index() != d.Count()-1 {
		t.Errorf("Expected to stay on last slide, got %d", d.Index())
	}
}

// TestLessonShape verifies the fixed deck carries the expected interactive slides
func TestLessonShape(t *testing.T) {
	deck := Lesson()

	kinds := map[Kind]int{}
	for _, s := range deck {
		kinds[s.Kind]++
		if s.Title == "" {
			t.Errorf("slide %q: expected a title", s.ID)
		}
		switch s.Kind {
		case KindHorizontalLab, KindInclineLab:
			if len(s.Params) == 0 {
				t.Errorf("slide %q: expected slider params on a lab slide", s.ID)
			}
			for _, p := range s.Params {
				if p.Min >= p.Max {
					t.Errorf("slide %q param %q: expected Min < Max", s.ID, p.Key)
				}
				if p.Default < p.Min || p.Default > p.Max {
					t.Errorf("slide %q param %q: expected Default within range", s.ID, p.Key)
				}
				if p.Step <= 0 {
					t.Errorf("slide %q param %q: expected positive Step", s.ID, p.Key)
				}
			}
		}
	}

	if kinds[KindHorizontalLab] != 1 || kinds[KindInclineLab] != 1 {
		t.Errorf("Expected exactly one lab slide per scenario, got %v", kinds)
	}
	if kinds[KindQuiz] != 1 {
		t.Errorf("Expected exactly one quiz slide, got %d", kinds[KindQuiz])
	}
}

// TestQuestionsWellFormed verifies every quiz question keys a real option
func TestQuestionsWellFormed(t *testing.T) {
	for i, q := range Questions() {
		if len(q.Options) < 2 {
			t.Errorf("question %d: expected at least 2 options", i)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			t.Errorf("question %d: correct index %d out of range", i, q.Correct)
		}
	}
}
