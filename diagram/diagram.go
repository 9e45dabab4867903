// Package diagram builds free-body diagrams as backend-independent drawing
// commands. Build is a pure function of (Scenario, ForceSet, Size): the
// same inputs always produce the same Drawing, so backends may rasterize or
// diff the output freely. Canvas units are square with +Y pointing down.
package diagram

import (
	"math"

	"github.com/lixenwraith/newton-tutor/vmath"
)

const (
	// ReferenceLength is the canvas length of the longest arrow in any
	// diagram. All other arrows scale proportionally, so scenes with very
	// different magnitude ranges stay readable.
	ReferenceLength = 20.0

	// HeadLength and HeadAngle define the two arrowhead segments, each
	// rotated ±HeadAngle radians off the shaft direction at the tip
	HeadLength = 7.0
	HeadAngle  = 0.35

	// Block glyph half extents: along the surface and away from it
	blockHalfU = 4.0
	blockHalfN = 2.5

	labelGap = 2.0
)

// Build produces the drawing commands for one free-body diagram. Zero
// magnitudes omit their arrows; a shared scale factor keeps arrow length
// proportional to force magnitude with the largest force at ReferenceLength.
func Build(sc Scenario, fs ForceSet, size Size) Drawing {
	scale := ReferenceLength / maxMagnitude(fs)

	var u, n vmath.Vec2 // surface frame: u along the slope, n away from it
	var anchor vmath.Vec2
	var surface []Segment

	switch sc.Kind {
	case ScenarioInclined:
		alpha := vmath.DegToRad(sc.InclineDeg)
		u = vmath.V2(math.Cos(alpha), -math.Sin(alpha))
		n = u.Perpendicular()

		baseY := size.H * 0.88
		base := vmath.V2(size.W*0.12, baseY)
		run := size.W * 0.72
		if rise := run * math.Tan(alpha); rise > size.H*0.72 {
			run = size.H * 0.72 / math.Tan(alpha)
		}
		top := base.Add(vmath.V2(run, -run*math.Tan(alpha)))

		surface = []Segment{
			{From: base, To: top},                    // slope
			{From: base, To: vmath.V2(top.X, baseY)}, // ground
			{From: vmath.V2(top.X, baseY), To: top},  // back wall
		}

		mid := base.Add(top.Sub(base).Scale(0.5))
		anchor = mid.Add(n.Scale(blockHalfN))

	default: // ScenarioHorizontal
		u = vmath.V2(1, 0)
		n = vmath.V2(0, -1)
		anchor = vmath.V2(size.W*0.5, size.H*0.6)
		groundY := anchor.Y + blockHalfN
		surface = []Segment{
			{From: vmath.V2(size.W*0.1, groundY), To: vmath.V2(size.W*0.9, groundY)},
		}
	}

	d := Drawing{
		Size:    size,
		Anchor:  anchor,
		Surface: surface,
		Block:   blockOutline(anchor, u, n),
	}

	addArrow := func(id ForceID, dir vmath.Vec2, magnitude float64, label string) {
		if magnitude <= 0 {
			return
		}
		d.Arrows = append(d.Arrows, buildArrow(id, anchor, dir, magnitude*scale, label))
	}

	addArrow(ForceWeight, vmath.V2(0, 1), fs.Weight, "W")
	addArrow(ForceNormal, n, fs.Normal, "N")
	addArrow(ForceFriction, u.Scale(-1), fs.Friction, "f")
	if fs.Applied != nil {
		theta := vmath.DegToRad(fs.Applied.AngleDeg)
		dir := vmath.V2(math.Cos(theta), -math.Sin(theta))
		addArrow(ForceApplied, dir, fs.Applied.Magnitude, "F")
	}

	return d
}

// maxMagnitude returns the largest supplied magnitude with a floor of 1 so
// an all-zero ForceSet never divides by zero
func maxMagnitude(fs ForceSet) float64 {
	m := 1.0
	for _, v := range []float64{fs.Weight, fs.Normal, fs.Friction} {
		if v > m {
			m = v
		}
	}
	if fs.Applied != nil && fs.Applied.Magnitude > m {
		m = fs.Applied.Magnitude
	}
	return m
}

// buildArrow assembles shaft, two-segment head, and label for one force
func buildArrow(id ForceID, origin, dir vmath.Vec2, length float64, label string) Arrow {
	dir = dir.Normalize()
	tip := origin.Add(dir.Scale(length))
	back := dir.Scale(-HeadLength)

	a := Arrow{
		ID:    id,
		Shaft: Segment{From: origin, To: tip},
		Head: [2]Segment{
			{From: tip, To: tip.Add(back.Rotate(HeadAngle))},
			{From: tip, To: tip.Add(back.Rotate(-HeadAngle))},
		},
	}
	if label != "" {
		a.Label = &Label{Pos: tip.Add(dir.Scale(labelGap)), Text: label}
	}
	return a
}

// blockOutline returns the four edges of the block glyph centered on anchor,
// aligned to the surface frame (u, n)
func blockOutline(anchor, u, n vmath.Vec2) [4]Segment {
	du := u.Scale(blockHalfU)
	dn := n.Scale(blockHalfN)

	a := anchor.Sub(du).Add(dn) // top-left in surface frame
	b := anchor.Add(du).Add(dn)
	c := anchor.Add(du).Sub(dn)
	d := anchor.Sub(du).Sub(dn)

	return [4]Segment{
		{From: a, To: b},
		{From: b, To: c},
		{From: c, To: d},
		{From: d, To: a},
	}
}
