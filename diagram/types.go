package diagram

import "github.com/lixenwraith/newton-tutor/vmath"

// ScenarioKind selects one of the two fixed scene layouts
type ScenarioKind uint8

const (
	ScenarioHorizontal ScenarioKind = iota
	ScenarioInclined
)

// Scenario describes the support surface. InclineDeg is meaningful only for
// ScenarioInclined and gives the angle between the surface and the horizontal.
type Scenario struct {
	Kind       ScenarioKind
	InclineDeg float64
}

// Horizontal returns the flat-surface scenario
func Horizontal() Scenario {
	return Scenario{Kind: ScenarioHorizontal}
}

// Inclined returns the inclined-plane scenario at the given angle in degrees
func Inclined(angleDeg float64) Scenario {
	return Scenario{Kind: ScenarioInclined, InclineDeg: angleDeg}
}

// AppliedForce is an optional external push with world-frame direction
type AppliedForce struct {
	Magnitude float64
	AngleDeg  float64 // counter-clockwise from horizontal
}

// ForceSet carries the magnitudes to draw. All values are non-negative;
// zero Friction and nil/zero Applied simply omit their arrows. A ForceSet
// is rebuilt from scratch on every input change, never mutated in place.
type ForceSet struct {
	Weight   float64
	Normal   float64
	Friction float64
	Applied  *AppliedForce
}

// Size is the drawing canvas in abstract square units. The rasterizing
// backend decides how units map onto its own pixels or cells.
type Size struct {
	W, H float64
}

// Segment is a straight stroke between two canvas points
type Segment struct {
	From, To vmath.Vec2
}

// Label is text anchored at a canvas point
type Label struct {
	Pos  vmath.Vec2
	Text string
}

// ForceID identifies which force an arrow represents, letting backends
// style each force consistently across scenarios
type ForceID uint8

const (
	ForceWeight ForceID = iota
	ForceNormal
	ForceFriction
	ForceApplied
)

// Arrow is one rendered force vector: a shaft from the block anchor to the
// tip, a two-segment head, and an optional label near the tip
type Arrow struct {
	ID    ForceID
	Shaft Segment
	Head  [2]Segment
	Label *Label
}

// Drawing is the complete command list for one free-body diagram. It is a
// pure function of (Scenario, ForceSet, Size); identical inputs produce an
// identical Drawing.
type Drawing struct {
	Size    Size
	Anchor  vmath.Vec2 // block center, the origin of every arrow
	Surface []Segment  // ground line or incline wedge
	Block   [4]Segment // block glyph outline
	Arrows  []Arrow
}
