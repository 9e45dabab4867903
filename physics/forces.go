// Package physics resolves the forces on a block for the two lesson
// scenarios: pushed along a horizontal surface and resting on an inclined
// plane. Functions are pure and total; the UI layer range-clamps every
// input (mass > 0, mu in [0,1], angles in slide-defined ranges) before it
// reaches this package.
package physics

import (
	"math"

	"github.com/lixenwraith/newton-tutor/vmath"
)

// Gravity is the standard gravitational acceleration in m/s²
const Gravity = 9.81

// HorizontalResult holds the resolved forces for a block pushed across a
// horizontal surface by a force applied at an angle above the horizontal
type HorizontalResult struct {
	Fx          float64 // horizontal component of the applied force, N
	Fy          float64 // vertical component of the applied force, N
	Weight      float64 // m·g, N
	Normal      float64 // support force, clamped at zero on contact loss, N
	Friction    float64 // kinetic friction μ·N, N
	Net         float64 // net horizontal force, N
	Accel       float64 // net / m, m/s²
	ContactLost bool    // upward applied component exceeded weight
}

// InclineResult holds the resolved forces for a block sliding on an incline
type InclineResult struct {
	Weight   float64 // m·g, N
	Normal   float64 // m·g·cos(α), N
	Driving  float64 // gravity component along the slope m·g·sin(α), N
	Friction float64 // kinetic friction μ·N, N
	Net      float64 // driving − friction, N
	Accel    float64 // net / m, m/s²
}

// ResolveHorizontal computes forces for a block of the given mass pushed by
// applied newtons at angleDeg above the horizontal, with kinetic friction
// coefficient mu. The normal force is reduced by the upward component of
// the applied force; if that component exceeds the weight the block leaves
// the surface, Normal clamps to zero, friction vanishes, and ContactLost is
// set so callers can surface the condition instead of drawing a backwards
// normal arrow.
func ResolveHorizontal(mass, applied, angleDeg, mu float64) HorizontalResult {
	theta := vmath.DegToRad(angleDeg)
	fx := applied * math.Cos(theta)
	fy := applied * math.Sin(theta)
	weight := mass * Gravity

	normal := weight - fy
	lost := normal < 0
	if lost {
		normal = 0
	}

	friction := mu * normal
	net := fx - friction

	return HorizontalResult{
		Fx:          fx,
		Fy:          fy,
		Weight:      weight,
		Normal:      normal,
		Friction:    friction,
		Net:         net,
		Accel:       net / mass,
		ContactLost: lost,
	}
}

// ResolveIncline computes forces for a block of the given mass on a
// frictional incline at inclineDeg from the horizontal. Gravity decomposes
// into a perpendicular component carried by the normal force and a parallel
// component driving the block down the slope.
func ResolveIncline(mass, inclineDeg, mu float64) InclineResult {
	alpha := vmath.DegToRad(inclineDeg)
	weight := mass * Gravity
	normal := weight * math.Cos(alpha)
	driving := weight * math.Sin(alpha)
	friction := mu * normal
	net := driving - friction

	return InclineResult{
		Weight:   weight,
		Normal:   normal,
		Driving:  driving,
		Friction: friction,
		Net:      net,
		Accel:    net / mass,
	}
}
