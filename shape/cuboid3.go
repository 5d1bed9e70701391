package shape

import "github.com/fieldway/updraft/vec"

// Cuboid3 is a box with rounded edges and an optional hollow interior. Size
// is the half-extent per axis.
type Cuboid3 struct {
	size       vec.Vec3
	edgeRadius float32
	hollow     bool

	cache []Collider3
	dirty bool
}

// NewCuboid3 creates a cuboid with unit half-extents and sharp edges.
func NewCuboid3() *Cuboid3 {
	return &Cuboid3{size: vec.V3(1, 1, 1), dirty: true}
}

// Size returns the half-extent per axis.
func (c *Cuboid3) Size() vec.Vec3 { return c.size }

// SetSize sets the half-extent per axis, clamped to a minimal positive size.
func (c *Cuboid3) SetSize(size vec.Vec3) {
	c.size = size.Max(vec.MinSize3)
	c.dirty = true
}

// EdgeRadius returns the edge rounding radius.
func (c *Cuboid3) EdgeRadius() float32 { return c.edgeRadius }

// SetEdgeRadius sets the edge rounding radius.
func (c *Cuboid3) SetEdgeRadius(r float32) {
	c.edgeRadius = r
	c.dirty = true
}

// Hollow reports whether the interior fill is omitted.
func (c *Cuboid3) Hollow() bool { return c.hollow }

// SetHollow toggles the interior fill. This has no visible effect when the
// edge radius is zero.
func (c *Cuboid3) SetHollow(hollow bool) {
	c.hollow = hollow
	c.dirty = true
}

// Up classifies the point by which extents it exceeds. One axis: outward
// face normal. Two axes: direction away from the nearest edge. Three axes:
// direction away from the nearest corner.
func (c *Cuboid3) Up(p vec.Vec3) vec.Vec3 {
	mask := 0
	if absf(p.X) > c.size.X {
		mask |= 0b001
	}
	if absf(p.Y) > c.size.Y {
		mask |= 0b010
	}
	if absf(p.Z) > c.size.Z {
		mask |= 0b100
	}

	// Direction from the nearest edge point: the exceeded coordinates snap
	// to the box extent, the remaining axis is flattened away.
	edge := func(flat vec.Vec3) vec.Vec3 {
		return c.size.Mul(flat.Sign()).DirectionTo(flat)
	}

	switch mask {
	// Over one of the six faces.
	case 0b001:
		return vec.V3(signf(p.X), 0, 0)
	case 0b010:
		return vec.V3(0, signf(p.Y), 0)
	case 0b100:
		return vec.V3(0, 0, signf(p.Z))

	// Over one of the twelve edges.
	case 0b011:
		return edge(vec.FlattenZ(p))
	case 0b101:
		return edge(vec.FlattenY(p))
	case 0b110:
		return edge(vec.FlattenX(p))

	// Over one of the eight corners.
	case 0b111:
		return c.size.Mul(p.Sign()).DirectionTo(p)

	// Inside the box, should not happen.
	default:
		return p.UnitOrZero()
	}
}

// Colliders returns the rounded decomposition: one filling box unless
// hollow, plus one capsule per axis duplicated at the four sign
// combinations of the other two axes.
func (c *Cuboid3) Colliders() []Collider3 {
	if c.dirty || c.cache == nil {
		c.cache = c.generate()
		c.dirty = false
	}
	return c.cache
}

func (c *Cuboid3) generate() []Collider3 {
	s := c.size
	r := c.edgeRadius

	out := make([]Collider3, 0, 13)
	if !c.hollow {
		out = append(out, Collider3{
			Shape: Box3{Size: s.Scale(2)},
			Pose:  vec.Transform3Identity,
		})
	}

	signs := [4][2]float32{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

	edgeX := capsule3(r, s.X*2)
	edgeY := capsule3(r, s.Y*2)
	edgeZ := capsule3(r, s.Z*2)
	for _, sg := range signs {
		out = append(out, Collider3{
			Shape: edgeX,
			Pose:  vec.T3(vec.Basis3AlongX, vec.V3(0, s.Y*sg[0], s.Z*sg[1])),
		})
	}
	for _, sg := range signs {
		out = append(out, Collider3{
			Shape: edgeY,
			Pose:  vec.T3(vec.Basis3AlongY, vec.V3(s.X*sg[0], 0, s.Z*sg[1])),
		})
	}
	for _, sg := range signs {
		out = append(out, Collider3{
			Shape: edgeZ,
			Pose:  vec.T3(vec.Basis3AlongZ, vec.V3(s.X*sg[0], s.Y*sg[1], 0)),
		})
	}
	return out
}
