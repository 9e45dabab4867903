package slides

import "github.com/lixenwraith/newton-tutor/quiz"

// Parameter keys shared between lab slide specs and the input handler
const (
	ParamMass   = "mass"
	ParamForce  = "force"
	ParamAngle  = "angle"
	ParamMu     = "mu"
	ParamInclin = "incline"
)

// Lesson returns the fixed Newton's-laws deck
func Lesson() []Slide {
	return []Slide{
		{
			ID:    "title",
			Title: "Newton's Laws of Motion",
			Kind:  KindText,
			Body: []string{
				"An interactive introduction to forces, free-body diagrams, and the equation that ties them together.",
				"",
				"• ←/→ move between slides",
				"• Tab and +/- drive the experiments",
				"• q quits",
			},
		},
		{
			ID:    "first-law",
			Title: "First Law — Inertia",
			Kind:  KindText,
			Body: []string{
				"An object at rest stays at rest, and an object in motion stays in motion at constant velocity, unless acted on by a net external force.",
				"",
				"• Velocity only changes when forces stop cancelling out.",
				"• A hockey puck on smooth ice keeps gliding; friction is the force that finally stops it.",
				"• \"No net force\" is not \"no forces\" — a book on a table has two, perfectly balanced.",
			},
		},
		{
			ID:    "second-law",
			Title: "Second Law — F = m·a",
			Kind:  KindText,
			Body: []string{
				"The net force on an object equals its mass times its acceleration: F_net = m·a.",
				"",
				"• Twice the net force, twice the acceleration.",
				"• Twice the mass, half the acceleration for the same push.",
				"• Units: newtons = kg · m/s². Weight is just W = m·g with g = 9.81 m/s².",
				"",
				"The next slide lets you push a block around and watch the numbers.",
			},
		},
		{
			ID:    "horizontal-lab",
			Title: "Experiment — Pushing a Block",
			Kind:  KindHorizontalLab,
			Body: []string{
				"Push the block with a force F at an angle θ above the horizontal. The upward part of the push unloads the surface, which weakens friction.",
			},
			Params: []ParamSpec{
				{Key: ParamMass, Label: "mass", Unit: "kg", Min: 1, Max: 50, Step: 1, Default: 10},
				{Key: ParamForce, Label: "force", Unit: "N", Min: 0, Max: 100, Step: 5, Default: 30},
				{Key: ParamAngle, Label: "angle θ", Unit: "°", Min: 0, Max: 60, Step: 5, Default: 0},
				{Key: ParamMu, Label: "μ kinetic", Unit: "", Min: 0, Max: 1, Step: 0.05, Default: 0.25},
			},
		},
		{
			ID:    "third-law",
			Title: "Third Law — Action and Reaction",
			Kind:  KindText,
			Body: []string{
				"For every action there is an equal and opposite reaction: if A pushes on B, then B pushes on A with the same magnitude in the opposite direction.",
				"",
				"• The pair acts on two different objects, so the forces never cancel on one body.",
				"• You push the wall; the wall pushes you. The floor's normal force is the reaction to you pressing on it.",
				"• A rocket throws exhaust backward; the exhaust pushes the rocket forward.",
			},
		},
		{
			ID:    "incline-lab",
			Title: "Experiment — Block on an Incline",
			Kind:  KindInclineLab,
			Body: []string{
				"Tilt the surface and gravity splits in two: a component pressing into the slope and one pulling the block down it.",
			},
			Params: []ParamSpec{
				{Key: ParamMass, Label: "mass", Unit: "kg", Min: 1, Max: 50, Step: 1, Default: 6},
				{Key: ParamInclin, Label: "incline α", Unit: "°", Min: 0, Max: 45, Step: 5, Default: 25},
				{Key: ParamMu, Label: "μ kinetic", Unit: "", Min: 0, Max: 1, Step: 0.05, Default: 0},
			},
		},
		{
			ID:    "fbd",
			Title: "Free-Body Diagrams",
			Kind:  KindText,
			Body: []string{
				"A free-body diagram isolates one object and draws every external force on it as an arrow from its center.",
				"",
				"• Arrow direction shows where the force points; arrow length shows how strong it is.",
				"• Weight always points straight down, the normal force perpendicular to the surface.",
				"• Kinetic friction opposes sliding with magnitude μ·N.",
				"• If the arrows balance, acceleration is zero — that is the first law again.",
			},
		},
		{
			ID:    "quiz",
			Title: "Check Yourself",
			Kind:  KindQuiz,
			Body: []string{
				"↑/↓ pick a question, 1-4 pick an answer, Enter checks, r resets.",
			},
		},
		{
			ID:    "summary",
			Title: "Summary",
			Kind:  KindText,
			Body: []string{
				"• First law: no net force, no change in velocity.",
				"• Second law: F_net = m·a — force budgets become motion.",
				"• Third law: forces come in equal and opposite pairs.",
				"• Free-body diagrams turn a physical setup into a solvable force budget.",
				"",
				"Change one slider at a time in the experiments and predict the numbers before you look.",
			},
		},
	}
}

// Questions returns the fixed quiz for the lesson
func Questions() []quiz.Question {
	return []quiz.Question{
		{
			Prompt: "A book rests on a table. The net force on the book is:",
			Options: []string{
				"zero",
				"its weight, downward",
				"the normal force, upward",
				"impossible to tell",
			},
			Correct: 0,
		},
		{
			Prompt: "Doubling the mass while keeping the same net force makes the acceleration:",
			Options: []string{
				"double",
				"half",
				"unchanged",
				"zero",
			},
			Correct: 1,
		},
		{
			Prompt: "A 10 kg block feels a 30 N push and 24.525 N of friction. Its acceleration is about:",
			Options: []string{
				"3.0 m/s²",
				"0.55 m/s²",
				"5.5 m/s²",
				"0.3 m/s²",
			},
			Correct: 1,
		},
		{
			Prompt: "On a frictionless incline, the block's acceleration depends on:",
			Options: []string{
				"its mass only",
				"the incline angle only",
				"both mass and angle",
				"neither",
			},
			Correct: 1,
		},
	}
}
