package vec

// Basis2 is a 2x2 rotation matrix stored as column vectors: X and Y are the
// images of the unit axes.
type Basis2 struct {
	X, Y Vec2
}

// Basis2Identity is the identity 2D frame.
var Basis2Identity = Basis2{X: Vec2{1, 0}, Y: Vec2{0, 1}}

// Basis2AlongX orients a capsule's long (Y) axis along the X axis.
var Basis2AlongX = Basis2{X: Vec2{0, 1}, Y: Vec2{-1, 0}}

// Basis2AlongY keeps a capsule's long axis vertical.
var Basis2AlongY = Basis2Identity

// Rotation2 returns the 2D rotation by angle radians.
func Rotation2(angle float32) Basis2 {
	s, c := sincosf(angle)
	return Basis2{X: Vec2{c, s}, Y: Vec2{-s, c}}
}

// MulVec applies the frame to v.
func (b Basis2) MulVec(v Vec2) Vec2 {
	return b.X.Scale(v.X).Add(b.Y.Scale(v.Y))
}

// Inverse returns the inverse frame. The basis must be orthonormal.
func (b Basis2) Inverse() Basis2 {
	return Basis2{
		X: Vec2{b.X.X, b.Y.X},
		Y: Vec2{b.X.Y, b.Y.Y},
	}
}

// Basis3 is a 3x3 rotation matrix stored as column vectors: X, Y and Z are
// the images of the unit axes.
type Basis3 struct {
	X, Y, Z Vec3
}

// Basis3Identity is the identity 3D frame.
var Basis3Identity = Basis3{X: Vec3{X: 1}, Y: Vec3{Y: 1}, Z: Vec3{Z: 1}}

// Basis3AlongX orients a capsule's long (Y) axis along the X axis.
var Basis3AlongX = Basis3{X: Vec3{0, 1, 0}, Y: Vec3{-1, 0, 0}, Z: Vec3{0, 0, 1}}

// Basis3AlongY keeps a capsule's long axis vertical.
var Basis3AlongY = Basis3Identity

// Basis3AlongZ orients a capsule's long (Y) axis along the Z axis.
var Basis3AlongZ = Basis3{X: Vec3{1, 0, 0}, Y: Vec3{0, 0, 1}, Z: Vec3{0, -1, 0}}

// Rotation3 returns the rotation about the given unit axis by angle radians.
func Rotation3(axis Vec3, angle float32) Basis3 {
	s, c := sincosf(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return Basis3{
		X: Vec3{t*x*x + c, t*x*y + s*z, t*x*z - s*y},
		Y: Vec3{t*x*y - s*z, t*y*y + c, t*y*z + s*x},
		Z: Vec3{t*x*z + s*y, t*y*z - s*x, t*z*z + c},
	}
}

// MulVec applies the frame to v.
func (b Basis3) MulVec(v Vec3) Vec3 {
	return b.X.Scale(v.X).Add(b.Y.Scale(v.Y)).Add(b.Z.Scale(v.Z))
}

// Mul composes two frames: the result applies o first, then b.
func (b Basis3) Mul(o Basis3) Basis3 {
	return Basis3{
		X: b.MulVec(o.X),
		Y: b.MulVec(o.Y),
		Z: b.MulVec(o.Z),
	}
}

// Inverse returns the inverse frame. The basis must be orthonormal.
func (b Basis3) Inverse() Basis3 {
	return Basis3{
		X: Vec3{b.X.X, b.Y.X, b.Z.X},
		Y: Vec3{b.X.Y, b.Y.Y, b.Z.Y},
		Z: Vec3{b.X.Z, b.Y.Z, b.Z.Z},
	}
}

// RotatedY returns the frame rotated about the world +Y axis by angle
// radians. Used when tiling ring slices around the central axis.
func (b Basis3) RotatedY(angle float32) Basis3 {
	return Basis3{
		X: b.X.RotatedY(angle),
		Y: b.Y.RotatedY(angle),
		Z: b.Z.RotatedY(angle),
	}
}

// Orthonormalized returns the frame with its columns orthonormalized via
// Gram-Schmidt. A frame with a zero column is returned unchanged.
func (b Basis3) Orthonormalized() Basis3 {
	x := b.X.UnitOrZero()
	y := b.Y.Sub(x.Scale(x.Dot(b.Y))).UnitOrZero()
	z := b.Z.Sub(x.Scale(x.Dot(b.Z))).Sub(y.Scale(y.Dot(b.Z))).UnitOrZero()
	if x.LengthSq() == 0 || y.LengthSq() == 0 || z.LengthSq() == 0 {
		return b
	}
	return Basis3{X: x, Y: y, Z: z}
}
