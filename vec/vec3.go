package vec

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Up3 is the conventional up direction for 3D shapes: ring and curve
// generators build their slices around the +Y axis.
var Up3 = Vec3{0, 1, 0}

// MinSize3 is the minimal valid extent for 3D shapes.
var MinSize3 = Vec3{MinPositive, MinPositive, MinPositive}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Neg returns -a.
func (a Vec3) Neg() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the euclidean length of a.
func (a Vec3) Length() float32 {
	return float32(math.Sqrt(float64(a.X*a.X + a.Y*a.Y + a.Z*a.Z)))
}

// LengthSq returns the squared length of a.
func (a Vec3) LengthSq() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// UnitOrZero returns a normalized to unit length, or the zero vector when a
// has zero length.
func (a Vec3) UnitOrZero() Vec3 {
	l := a.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// DirectionTo returns the unit vector pointing from a toward b, or zero when
// the two coincide.
func (a Vec3) DirectionTo(b Vec3) Vec3 {
	return b.Sub(a).UnitOrZero()
}

// Sign returns the component-wise sign of a: -1, 0 or 1 per component.
func (a Vec3) Sign() Vec3 {
	return Vec3{signf(a.X), signf(a.Y), signf(a.Z)}
}

// Max returns the component-wise maximum of a and b.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)}
}

// AngleTo returns the unsigned angle between a and b in radians.
func (a Vec3) AngleTo(b Vec3) float32 {
	return float32(math.Atan2(float64(a.Cross(b).Length()), float64(a.Dot(b))))
}

// Rotated returns a rotated about the given axis by angle radians. The axis
// must be unit length.
func (a Vec3) Rotated(axis Vec3, angle float32) Vec3 {
	return Rotation3(axis, angle).MulVec(a)
}

// RotatedY returns a rotated about the +Y axis by angle radians.
func (a Vec3) RotatedY(angle float32) Vec3 {
	s, c := sincosf(angle)
	return Vec3{a.X*c + a.Z*s, a.Y, -a.X*s + a.Z*c}
}
