// Package vmath provides the float vector and angle helpers shared by the
// force resolver and the diagram builder. All trigonometric functions take
// radians; UI-facing angles are degrees and convert at the boundary.
package vmath

import "math"

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp returns linear interpolation between a and b at t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
