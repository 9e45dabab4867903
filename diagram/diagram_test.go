package diagram

import (
	"math"
	"reflect"
	"testing"

	"github.com/lixenwraith/newton-tutor/vmath"
)

const epsilon = 1e-9

var testSize = Size{W: 120, H: 60}

func testForceSet() ForceSet {
	return ForceSet{
		Weight:   98.1,
		Normal:   83.1,
		Friction: 20.775,
		Applied:  &AppliedForce{Magnitude: 30, AngleDeg: 30},
	}
}

func arrowByID(t *testing.T, d Drawing, id ForceID) Arrow {
	t.Helper()
	for _, a := range d.Arrows {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("Drawing has no arrow with ID %d", id)
	return Arrow{}
}

func shaftLen(a Arrow) float64 {
	return a.Shaft.To.Sub(a.Shaft.From).Len()
}

// TestBuildIdempotent verifies the drawing is a pure function of its inputs:
// two calls with identical arguments produce identical command lists
func TestBuildIdempotent(t *testing.T) {
	for _, sc := range []Scenario{Horizontal(), Inclined(25)} {
		d1 := Build(sc, testForceSet(), testSize)
		d2 := Build(sc, testForceSet(), testSize)
		if !reflect.DeepEqual(d1, d2) {
			t.Errorf("Scenario %v: expected identical drawings from identical inputs", sc.Kind)
		}
	}
}

// TestLongestForceAtReferenceLength verifies the shared scale puts the
// largest magnitude exactly at ReferenceLength
func TestLongestForceAtReferenceLength(t *testing.T) {
	d := Build(Horizontal(), testForceSet(), testSize)
	w := arrowByID(t, d, ForceWeight) // weight is the largest magnitude

	if got := shaftLen(w); math.Abs(got-ReferenceLength) > epsilon {
		t.Errorf("Expected longest arrow at %v, got %v", ReferenceLength, got)
	}
}

// TestArrowLengthsProportional verifies arrow length tracks magnitude under
// one shared scale factor
func TestArrowLengthsProportional(t *testing.T) {
	fs := testForceSet()
	d := Build(Horizontal(), fs, testSize)

	weightLen := shaftLen(arrowByID(t, d, ForceWeight))
	frictionLen := shaftLen(arrowByID(t, d, ForceFriction))

	wantRatio := fs.Friction / fs.Weight
	gotRatio := frictionLen / weightLen
	if math.Abs(gotRatio-wantRatio) > epsilon {
		t.Errorf("Expected length ratio %v, got %v", wantRatio, gotRatio)
	}
}

// TestScaleInvariance verifies scaling all magnitudes by a positive constant
// scales every arrow by one common factor and leaves directions unchanged
func TestScaleInvariance(t *testing.T) {
	fs := testForceSet()
	base := Build(Horizontal(), fs, testSize)

	for _, k := range []float64{0.5, 2, 10} {
		scaled := ForceSet{
			Weight:   fs.Weight * k,
			Normal:   fs.Normal * k,
			Friction: fs.Friction * k,
			Applied:  &AppliedForce{Magnitude: fs.Applied.Magnitude * k, AngleDeg: fs.Applied.AngleDeg},
		}
		d := Build(Horizontal(), scaled, testSize)

		if len(d.Arrows) != len(base.Arrows) {
			t.Fatalf("k=%v: expected %d arrows, got %d", k, len(base.Arrows), len(d.Arrows))
		}

		factor := shaftLen(d.Arrows[0]) / shaftLen(base.Arrows[0])
		for i := range d.Arrows {
			gotFactor := shaftLen(d.Arrows[i]) / shaftLen(base.Arrows[i])
			if math.Abs(gotFactor-factor) > epsilon {
				t.Errorf("k=%v arrow %d: expected common factor %v, got %v", k, i, factor, gotFactor)
			}

			baseDir := base.Arrows[i].Shaft.To.Sub(base.Arrows[i].Shaft.From).Normalize()
			gotDir := d.Arrows[i].Shaft.To.Sub(d.Arrows[i].Shaft.From).Normalize()
			if math.Abs(baseDir.X-gotDir.X) > epsilon || math.Abs(baseDir.Y-gotDir.Y) > epsilon {
				t.Errorf("k=%v arrow %d: expected direction %+v, got %+v", k, i, baseDir, gotDir)
			}
		}
	}
}

// TestArrowheadGeometry verifies each head segment has length HeadLength and
// forms exactly HeadAngle radians with the shaft at the tip
func TestArrowheadGeometry(t *testing.T) {
	for _, sc := range []Scenario{Horizontal(), Inclined(25)} {
		d := Build(sc, testForceSet(), testSize)
		for _, a := range d.Arrows {
			shaftDir := a.Shaft.To.Sub(a.Shaft.From).Normalize()
			back := shaftDir.Scale(-1)

			for i, h := range a.Head {
				if !reflect.DeepEqual(h.From, a.Shaft.To) {
					t.Errorf("arrow %d head %d: expected head anchored at tip", a.ID, i)
				}
				v := h.To.Sub(h.From)
				if math.Abs(v.Len()-HeadLength) > epsilon {
					t.Errorf("arrow %d head %d: expected length %v, got %v", a.ID, i, HeadLength, v.Len())
				}
				if got := vmath.AngleBetween(v, back); math.Abs(got-HeadAngle) > epsilon {
					t.Errorf("arrow %d head %d: expected angle %v with shaft, got %v", a.ID, i, HeadAngle, got)
				}
			}
		}
	}
}

// TestZeroMagnitudesOmitted verifies zero friction and absent applied force
// draw no arrows, and an all-zero set draws none without dividing by zero
func TestZeroMagnitudesOmitted(t *testing.T) {
	d := Build(Horizontal(), ForceSet{Weight: 50, Normal: 50}, testSize)
	if len(d.Arrows) != 2 {
		t.Errorf("Expected 2 arrows (weight, normal), got %d", len(d.Arrows))
	}
	for _, a := range d.Arrows {
		if a.ID == ForceFriction || a.ID == ForceApplied {
			t.Errorf("Expected no arrow for zero-magnitude force %d", a.ID)
		}
	}

	empty := Build(Horizontal(), ForceSet{}, testSize)
	if len(empty.Arrows) != 0 {
		t.Errorf("Expected no arrows for all-zero ForceSet, got %d", len(empty.Arrows))
	}
}

// TestHorizontalDirections verifies the fixed direction conventions: weight
// down, normal up, friction left, applied at its angle above horizontal
func TestHorizontalDirections(t *testing.T) {
	d := Build(Horizontal(), testForceSet(), testSize)

	cases := []struct {
		id   ForceID
		want vmath.Vec2
	}{
		{ForceWeight, vmath.V2(0, 1)},
		{ForceNormal, vmath.V2(0, -1)},
		{ForceFriction, vmath.V2(-1, 0)},
		{ForceApplied, vmath.V2(math.Cos(math.Pi/6), -math.Sin(math.Pi/6))},
	}
	for _, c := range cases {
		a := arrowByID(t, d, c.id)
		dir := a.Shaft.To.Sub(a.Shaft.From).Normalize()
		if math.Abs(dir.X-c.want.X) > epsilon || math.Abs(dir.Y-c.want.Y) > epsilon {
			t.Errorf("force %d: expected direction %+v, got %+v", c.id, c.want, dir)
		}
	}
}

// TestInclineDirections verifies the world-frame weight, surface-perpendicular
// normal, and down-slope friction on the inclined scenario
func TestInclineDirections(t *testing.T) {
	alpha := 25.0
	d := Build(Inclined(alpha), testForceSet(), testSize)
	rad := vmath.DegToRad(alpha)

	weight := arrowByID(t, d, ForceWeight)
	dir := weight.Shaft.To.Sub(weight.Shaft.From).Normalize()
	if math.Abs(dir.X) > epsilon || math.Abs(dir.Y-1) > epsilon {
		t.Errorf("Expected weight straight down in world frame, got %+v", dir)
	}

	normal := arrowByID(t, d, ForceNormal)
	dir = normal.Shaft.To.Sub(normal.Shaft.From).Normalize()
	slope := vmath.V2(math.Cos(rad), -math.Sin(rad))
	if math.Abs(dir.Dot(slope)) > epsilon {
		t.Errorf("Expected normal perpendicular to slope, dot = %v", dir.Dot(slope))
	}
	if dir.Y > 0 {
		t.Errorf("Expected normal pointing away from the surface (upward), got %+v", dir)
	}

	friction := arrowByID(t, d, ForceFriction)
	dir = friction.Shaft.To.Sub(friction.Shaft.From).Normalize()
	downSlope := slope.Scale(-1)
	if math.Abs(dir.X-downSlope.X) > epsilon || math.Abs(dir.Y-downSlope.Y) > epsilon {
		t.Errorf("Expected friction down-slope %+v, got %+v", downSlope, dir)
	}
}

// TestArrowsShareAnchor verifies every arrow originates at the block anchor
func TestArrowsShareAnchor(t *testing.T) {
	for _, sc := range []Scenario{Horizontal(), Inclined(40)} {
		d := Build(sc, testForceSet(), testSize)
		for _, a := range d.Arrows {
			if !reflect.DeepEqual(a.Shaft.From, d.Anchor) {
				t.Errorf("force %d: expected origin at anchor %+v, got %+v", a.ID, d.Anchor, a.Shaft.From)
			}
		}
	}
}
