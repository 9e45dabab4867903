package vmath

import "math"

// Vec2 is a 2D vector in canvas units. Screen convention: +Y points down.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the vector sum a + b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the Euclidean length of the vector
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Rotate returns the vector rotated by angle radians.
// With +Y down, positive angles rotate clockwise on screen.
func (a Vec2) Rotate(angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{a.X*cos - a.Y*sin, a.X*sin + a.Y*cos}
}

// Perpendicular returns the vector rotated 90° counter-clockwise on screen
func (a Vec2) Perpendicular() Vec2 {
	return Vec2{a.Y, -a.X}
}

// AngleBetween returns the unsigned angle in radians between a and b, zero-safe
func AngleBetween(a, b Vec2) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	// Guard acos domain against rounding
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}
