package shape

import "github.com/fieldway/updraft/vec"

// Cuboid2 is a rectangle with rounded corners and an optional hollow
// interior. Size is the half-extent per axis.
type Cuboid2 struct {
	size       vec.Vec2
	edgeRadius float32
	hollow     bool

	cache []Collider2
	dirty bool
}

// NewCuboid2 creates a cuboid with unit half-extents and sharp corners.
func NewCuboid2() *Cuboid2 {
	return &Cuboid2{size: vec.V2(1, 1), dirty: true}
}

// Size returns the half-extent per axis.
func (c *Cuboid2) Size() vec.Vec2 { return c.size }

// SetSize sets the half-extent per axis, clamped to a minimal positive size.
func (c *Cuboid2) SetSize(size vec.Vec2) {
	c.size = size.Max(vec.MinSize2)
	c.dirty = true
}

// EdgeRadius returns the corner rounding radius.
func (c *Cuboid2) EdgeRadius() float32 { return c.edgeRadius }

// SetEdgeRadius sets the corner rounding radius.
func (c *Cuboid2) SetEdgeRadius(r float32) {
	c.edgeRadius = r
	c.dirty = true
}

// Hollow reports whether the interior fill is omitted.
func (c *Cuboid2) Hollow() bool { return c.hollow }

// SetHollow toggles the interior fill. This has no visible effect when the
// edge radius is zero.
func (c *Cuboid2) SetHollow(hollow bool) {
	c.hollow = hollow
	c.dirty = true
}

// Up classifies the point against the box extents: over an edge the
// direction is the outward face normal, past two extents it points away from
// the nearest corner.
func (c *Cuboid2) Up(p vec.Vec2) vec.Vec2 {
	mask := 0
	if absf(p.X) > c.size.X {
		mask |= 0b01
	}
	if absf(p.Y) > c.size.Y {
		mask |= 0b10
	}

	switch mask {
	case 0b01:
		return vec.V2(signf(p.X), 0)
	case 0b10:
		return vec.V2(0, signf(p.Y))
	case 0b11:
		return c.size.Mul(p.Sign()).DirectionTo(p)
	default:
		// Inside the box, should not happen.
		return p.UnitOrZero()
	}
}

// Colliders returns the rounded decomposition: one filling rectangle unless
// hollow, plus one capsule per axis at both sign positions of the other
// axis.
func (c *Cuboid2) Colliders() []Collider2 {
	if c.dirty || c.cache == nil {
		c.cache = c.generate()
		c.dirty = false
	}
	return c.cache
}

func (c *Cuboid2) generate() []Collider2 {
	s := c.size
	r := c.edgeRadius

	out := make([]Collider2, 0, 5)
	if !c.hollow {
		out = append(out, Collider2{
			Shape: Box2{Size: s.Scale(2)},
			Pose:  vec.Transform2Identity,
		})
	}

	// One capsule per edge, long axis along the edge.
	edgeX := capsule2(r, s.X*2)
	edgeY := capsule2(r, s.Y*2)
	for _, sign := range [2]float32{1, -1} {
		out = append(out, Collider2{
			Shape: edgeX,
			Pose:  vec.T2(vec.Basis2AlongX, vec.V2(0, s.Y*sign)),
		})
		out = append(out, Collider2{
			Shape: edgeY,
			Pose:  vec.T2(vec.Basis2AlongY, vec.V2(s.X*sign, 0)),
		})
	}
	return out
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
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
