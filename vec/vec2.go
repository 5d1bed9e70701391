// Package vec provides float32 vector, frame, and pose math for gravity
// field evaluation. All directions produced by the package are either unit
// length or exactly zero; normalizing a zero vector yields zero, never NaN.
package vec

import "math"

// MinPositive is the smallest positive normal float32. Shape extents are
// clamped to this so generated primitives never have a zero size.
const MinPositive = 1.1754943508222875e-38

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// V2 creates a new Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// MinSize2 is the minimal valid extent for 2D shapes.
var MinSize2 = Vec2{MinPositive, MinPositive}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns a scaled by s.
func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Neg returns -a.
func (a Vec2) Neg() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Dot returns the dot product of a and b.
func (a Vec2) Dot(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Length returns the euclidean length of a.
func (a Vec2) Length() float32 {
	return float32(math.Sqrt(float64(a.X*a.X + a.Y*a.Y)))
}

// LengthSq returns the squared length of a.
func (a Vec2) LengthSq() float32 {
	return a.X*a.X + a.Y*a.Y
}

// UnitOrZero returns a normalized to unit length, or the zero vector when a
// has zero length.
func (a Vec2) UnitOrZero() Vec2 {
	l := a.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// DirectionTo returns the unit vector pointing from a toward b, or zero when
// the two coincide.
func (a Vec2) DirectionTo(b Vec2) Vec2 {
	return b.Sub(a).UnitOrZero()
}

// Sign returns the component-wise sign of a: -1, 0 or 1 per component.
func (a Vec2) Sign() Vec2 {
	return Vec2{signf(a.X), signf(a.Y)}
}

// Max returns the component-wise maximum of a and b.
func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{maxf(a.X, b.X), maxf(a.Y, b.Y)}
}

// Angle returns the angle of a in radians, measured from the +X axis.
func (a Vec2) Angle() float32 {
	return float32(math.Atan2(float64(a.Y), float64(a.X)))
}

// Rotated returns a rotated by angle radians.
func (a Vec2) Rotated(angle float32) Vec2 {
	s, c := sincosf(angle)
	return Vec2{a.X*c - a.Y*s, a.X*s + a.Y*c}
}

func signf(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func sincosf(angle float32) (sin, cos float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}
