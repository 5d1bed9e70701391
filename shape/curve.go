package shape

import "github.com/fieldway/updraft/vec"

// Path2 is the curve-sampling collaborator a Curve2 follows. The host
// engine's curve resource typically implements it; Polyline2 is a
// self-contained implementation for tests and tools.
type Path2 interface {
	// ClosestPoint returns the point on the curve nearest to p.
	ClosestPoint(p vec.Vec2) vec.Vec2

	// BakedPoints returns the curve sampled at the bake interval, in order.
	BakedPoints() []vec.Vec2

	// BakeInterval returns the sampling interval.
	BakeInterval() float32
}

// Path3 is the 3D curve-sampling collaborator.
type Path3 interface {
	ClosestPoint(p vec.Vec3) vec.Vec3
	BakedPoints() []vec.Vec3
	BakeInterval() float32
}

// Curve2 is a tube of constant radius following a curve. Without a curve
// configured it yields a zero up direction and no colliders.
type Curve2 struct {
	path   Path2
	radius float32

	cache []Collider2
	dirty bool
}

// NewCurve2 creates a curve shape with no curve configured.
func NewCurve2() *Curve2 {
	return &Curve2{dirty: true}
}

// Path returns the followed curve, or nil.
func (c *Curve2) Path() Path2 { return c.path }

// SetPath sets the curve to follow.
func (c *Curve2) SetPath(p Path2) {
	c.path = p
	c.dirty = true
}

// Radius returns the tube radius.
func (c *Curve2) Radius() float32 { return c.radius }

// SetRadius sets the tube radius.
func (c *Curve2) SetRadius(r float32) {
	c.radius = r
	c.dirty = true
}

// Up returns the direction from the closest point on the curve toward p.
func (c *Curve2) Up(p vec.Vec2) vec.Vec2 {
	if c.path == nil {
		return vec.Vec2{}
	}
	return c.path.ClosestPoint(p).DirectionTo(p)
}

// Colliders returns one capsule per consecutive pair of baked points,
// oriented along the segment and centered on its midpoint.
func (c *Curve2) Colliders() []Collider2 {
	if c.path == nil {
		return nil
	}
	if c.dirty || c.cache == nil {
		c.cache = c.generate()
		c.dirty = false
	}
	return c.cache
}

func (c *Curve2) generate() []Collider2 {
	points := c.path.BakedPoints()
	if len(points) < 2 {
		return nil
	}
	segment := capsule2(c.radius, c.path.BakeInterval())

	out := make([]Collider2, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		out = append(out, Collider2{
			Shape: segment,
			Pose:  orient2(p0.DirectionTo(p1), p0.Add(p1).Scale(0.5)),
		})
	}
	return out
}

// Curve3 is the 3D tube-following shape.
type Curve3 struct {
	path   Path3
	radius float32

	cache []Collider3
	dirty bool
}

// NewCurve3 creates a curve shape with no curve configured.
func NewCurve3() *Curve3 {
	return &Curve3{dirty: true}
}

// Path returns the followed curve, or nil.
func (c *Curve3) Path() Path3 { return c.path }

// SetPath sets the curve to follow.
func (c *Curve3) SetPath(p Path3) {
	c.path = p
	c.dirty = true
}

// Radius returns the tube radius.
func (c *Curve3) Radius() float32 { return c.radius }

// SetRadius sets the tube radius.
func (c *Curve3) SetRadius(r float32) {
	c.radius = r
	c.dirty = true
}

// Up returns the direction from the closest point on the curve toward p.
func (c *Curve3) Up(p vec.Vec3) vec.Vec3 {
	if c.path == nil {
		return vec.Vec3{}
	}
	return c.path.ClosestPoint(p).DirectionTo(p)
}

// Colliders returns one capsule per consecutive pair of baked points.
func (c *Curve3) Colliders() []Collider3 {
	if c.path == nil {
		return nil
	}
	if c.dirty || c.cache == nil {
		c.cache = c.generate()
		c.dirty = false
	}
	return c.cache
}

func (c *Curve3) generate() []Collider3 {
	points := c.path.BakedPoints()
	if len(points) < 2 {
		return nil
	}
	segment := capsule3(c.radius, c.path.BakeInterval())

	out := make([]Collider3, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		out = append(out, Collider3{
			Shape: segment,
			Pose:  orient3(p0.DirectionTo(p1), p0.Add(p1).Scale(0.5)),
		})
	}
	return out
}

const zeroApprox = 1e-5

// orient2 builds a pose whose Y axis points along direction.
func orient2(direction, center vec.Vec2) vec.Transform2 {
	const halfPi = 1.5707963
	return vec.T2(vec.Rotation2(direction.Angle()-halfPi), center)
}

// orient3 builds a pose whose Y axis points along direction. A vertical
// direction is collinear with the reference up and falls back to the
// identity frame.
func orient3(direction, center vec.Vec3) vec.Transform3 {
	if absf(direction.X) < zeroApprox && absf(direction.Z) < zeroApprox {
		return vec.T3(vec.Basis3Identity, center)
	}
	x := direction.Cross(vec.Up3)
	z := x.Cross(direction)
	basis := vec.Basis3{X: x, Y: direction, Z: z}.Orthonormalized()
	return vec.T3(basis, center)
}
