package slides

// Kind selects the layout a slide renders with
type Kind uint8

const (
	KindText          Kind = iota
	KindHorizontalLab      // slider-driven horizontal push diagram
	KindInclineLab         // slider-driven inclined plane diagram
	KindQuiz
)

// ParamSpec declares one slider-driven input on a lab slide. Live values
// belong to the application state; the spec only fixes the range the formula
// layer may ever receive.
type ParamSpec struct {
	Key     string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Slide is one entry in the fixed deck
type Slide struct {
	ID     string
	Title  string
	Kind   Kind
	Body   []string // paragraphs; lines starting with "• " render as bullets
	Params []ParamSpec
}
