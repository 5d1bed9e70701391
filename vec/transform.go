package vec

// Transform2 is a rigid 2D placement: an orthonormal frame plus a
// translation. It doubles as the pose attached to generated primitives.
type Transform2 struct {
	Basis  Basis2
	Origin Vec2
}

// Transform2Identity is the identity 2D pose.
var Transform2Identity = Transform2{Basis: Basis2Identity}

// T2 creates a pose from a frame and a translation.
func T2(basis Basis2, origin Vec2) Transform2 {
	return Transform2{Basis: basis, Origin: origin}
}

// Apply maps p from the pose's local space into its parent space.
func (t Transform2) Apply(p Vec2) Vec2 {
	return t.Basis.MulVec(p).Add(t.Origin)
}

// ApplyInverse maps p from the parent space into the pose's local space.
func (t Transform2) ApplyInverse(p Vec2) Vec2 {
	return t.Basis.Inverse().MulVec(p.Sub(t.Origin))
}

// Transform3 is a rigid 3D placement: an orthonormal frame plus a
// translation.
type Transform3 struct {
	Basis  Basis3
	Origin Vec3
}

// Transform3Identity is the identity 3D pose.
var Transform3Identity = Transform3{Basis: Basis3Identity}

// T3 creates a pose from a frame and a translation.
func T3(basis Basis3, origin Vec3) Transform3 {
	return Transform3{Basis: basis, Origin: origin}
}

// Apply maps p from the pose's local space into its parent space.
func (t Transform3) Apply(p Vec3) Vec3 {
	return t.Basis.MulVec(p).Add(t.Origin)
}

// ApplyInverse maps p from the parent space into the pose's local space.
func (t Transform3) ApplyInverse(p Vec3) Vec3 {
	return t.Basis.Inverse().MulVec(p.Sub(t.Origin))
}

// Mul composes two poses: the result applies o first, then t.
func (t Transform3) Mul(o Transform3) Transform3 {
	return Transform3{
		Basis:  t.Basis.Mul(o.Basis),
		Origin: t.Apply(o.Origin),
	}
}
