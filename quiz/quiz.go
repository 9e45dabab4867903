// Package quiz holds the end-of-lesson quiz state: a fixed question list, a
// parallel list of the learner's selections, and a revealed flag toggled by
// Check/Reset. The state has a single writer (the input handler); renderers
// only read.
package quiz

// Unanswered marks a question with no selected option
const Unanswered = -1

// Question is one multiple-choice question with the index of its correct option
type Question struct {
	Prompt  string
	Options []string
	Correct int
}

// Result is the revealed per-question outcome
type Result uint8

const (
	ResultHidden Result = iota // correctness not revealed yet
	ResultPass
	ResultFail
	ResultSkipped // checked while unanswered
)

// Quiz tracks selections against a fixed question list
type Quiz struct {
	questions []Question
	selected  []int
	revealed  bool
}

// New creates a quiz over the given questions with all selections cleared
func New(questions []Question) *Quiz {
	q := &Quiz{questions: questions}
	q.Reset()
	return q
}

// Count returns the number of questions
func (q *Quiz) Count() int {
	return len(q.questions)
}

// Question returns the question at index i
func (q *Quiz) Question(i int) Question {
	return q.questions[i]
}

// Selected returns the selected option index for question i, or Unanswered
func (q *Quiz) Selected(i int) int {
	return q.selected[i]
}

// Select records option j for question i. Out-of-range options are ignored
// so key handlers can pass raw digit input. Selecting hides any revealed
// correctness for that question set until the next Check.
func (q *Quiz) Select(i, j int) {
	if i < 0 || i >= len(q.questions) {
		return
	}
	if j < 0 || j >= len(q.questions[i].Options) {
		return
	}
	q.selected[i] = j
	q.revealed = false
}

// Check reveals correctness for every question
func (q *Quiz) Check() {
	q.revealed = true
}

// Reset clears all selections back to Unanswered and hides correctness
func (q *Quiz) Reset() {
	q.selected = make([]int, len(q.questions))
	for i := range q.selected {
		q.selected[i] = Unanswered
	}
	q.revealed = false
}

// Revealed returns true after Check until the next Reset or Select
func (q *Quiz) Revealed() bool {
	return q.revealed
}

// ResultFor returns the revealed outcome for question i
func (q *Quiz) ResultFor(i int) Result {
	if !q.revealed {
		return ResultHidden
	}
	sel := q.selected[i]
	switch {
	case sel == Unanswered:
		return ResultSkipped
	case sel == q.questions[i].Correct:
		return ResultPass
	default:
		return ResultFail
	}
}

// CorrectCount returns how many revealed questions pass. Zero while hidden.
func (q *Quiz) CorrectCount() int {
	if !q.revealed {
		return 0
	}
	n := 0
	for i := range q.questions {
		if q.ResultFor(i) == ResultPass {
			n++
		}
	}
	return n
}
