package vec

// Plane is a 3D half-space boundary in Hessian normal form: points p with
// Normal*p > D lie over (in front of) the plane. The normal must be unit
// length.
type Plane struct {
	Normal Vec3
	D      float32
}

// NewPlane creates a plane from a normal and its distance from the origin.
// The normal is normalized; a zero normal yields a degenerate plane that
// reports every point as not over.
func NewPlane(normal Vec3, d float32) Plane {
	return Plane{Normal: normal.UnitOrZero(), D: d}
}

// PlaneFromPoint creates the plane through point with the given normal.
func PlaneFromPoint(normal, point Vec3) Plane {
	n := normal.UnitOrZero()
	return Plane{Normal: n, D: n.Dot(point)}
}

// IsPointOver reports whether p lies strictly in front of the plane.
func (pl Plane) IsPointOver(p Vec3) bool {
	return pl.Normal.Dot(p) > pl.D
}

// DistanceTo returns the signed distance from p to the plane; negative when
// p is behind the plane.
func (pl Plane) DistanceTo(p Vec3) float32 {
	return pl.Normal.Dot(p) - pl.D
}

// Project returns the orthogonal projection of p onto the plane.
func (pl Plane) Project(p Vec3) Vec3 {
	return p.Sub(pl.Normal.Scale(pl.DistanceTo(p)))
}

// Transformed returns the plane mapped by a rigid pose.
func (pl Plane) Transformed(t Transform3) Plane {
	normal := t.Basis.MulVec(pl.Normal)
	point := t.Apply(pl.Normal.Scale(pl.D))
	return Plane{Normal: normal, D: normal.Dot(point)}
}
