package shape

import (
	"math"

	"github.com/fieldway/updraft/vec"
)

// RingKind identifies the internal geometry representation a Ring3 selects
// from its parameters.
type RingKind uint8

// Ring representations.
const (
	// RingTorus: flat ring of rim capsules, optionally filled to a disc.
	RingTorus RingKind = iota
	// RingFlat: flat annulus with distinct outer and inner rims.
	RingFlat
	// RingTube: cylinder wall, optionally filled.
	RingTube
	// RingBolt: annulus with height, rims duplicated top and bottom.
	RingBolt
)

// String returns the representation name.
func (k RingKind) String() string {
	switch k {
	case RingTorus:
		return "torus"
	case RingFlat:
		return "flat"
	case RingTube:
		return "tube"
	default:
		return "bolt"
	}
}

// Ring3 is a disc/torus/tube family shape centered on the +Y axis. The
// outer radius always dominates the inner radius; setting either clamps the
// other so inner <= outer holds.
type Ring3 struct {
	outerRadius float32
	innerRadius float32
	height      float32
	edgeRadius  float32
	vertexCount int

	cache []Collider3
	dirty bool
}

// NewRing3 creates a solid flat disc of radius 15 tessellated into 24
// slices.
func NewRing3() *Ring3 {
	return &Ring3{outerRadius: 15, vertexCount: 24, dirty: true}
}

// OuterRadius returns the outer radius.
func (r *Ring3) OuterRadius() float32 { return r.outerRadius }

// SetOuterRadius sets the outer radius and forces the inner radius down to
// it when needed.
func (r *Ring3) SetOuterRadius(radius float32) {
	r.outerRadius = radius
	if r.innerRadius > r.outerRadius {
		r.innerRadius = r.outerRadius
	}
	r.dirty = true
}

// InnerRadius returns the inner radius.
func (r *Ring3) InnerRadius() float32 { return r.innerRadius }

// SetInnerRadius sets the inner radius and forces the outer radius up to it
// when needed.
func (r *Ring3) SetInnerRadius(radius float32) {
	r.innerRadius = radius
	if r.outerRadius < r.innerRadius {
		r.outerRadius = r.innerRadius
	}
	r.dirty = true
}

// Height returns the ring height.
func (r *Ring3) Height() float32 { return r.height }

// SetHeight sets the ring height.
func (r *Ring3) SetHeight(height float32) {
	r.height = height
	r.dirty = true
}

// EdgeRadius returns the edge rounding radius.
func (r *Ring3) EdgeRadius() float32 { return r.edgeRadius }

// SetEdgeRadius sets the edge rounding radius.
func (r *Ring3) SetEdgeRadius(radius float32) {
	r.edgeRadius = radius
	r.dirty = true
}

// VertexCount returns the tessellation resolution.
func (r *Ring3) VertexCount() int { return r.vertexCount }

// SetVertexCount sets the tessellation resolution, clamped to at least 3.
func (r *Ring3) SetVertexCount(n int) {
	if n < 3 {
		n = 3
	}
	r.vertexCount = n
	r.dirty = true
}

// Kind returns the geometry representation the current parameters select.
func (r *Ring3) Kind() RingKind {
	thin := r.innerRadius >= r.outerRadius
	filled := r.innerRadius <= 0
	if r.height > 0 {
		if thin || filled {
			return RingTube
		}
		return RingBolt
	}
	if thin || filled {
		return RingTorus
	}
	return RingFlat
}

// Up classifies the point against the annulus (inside the hole, over the
// band, outside) and the height band, then points away from the nearest rim
// circle.
func (r *Ring3) Up(p vec.Vec3) vec.Vec3 {
	flat := vec.FlattenY(p)

	mask := 0
	dist := flat.Length()
	switch {
	case dist > r.outerRadius:
		mask = 0b010 // outside of the ring
	case dist < r.innerRadius:
		mask = 0b001 // inside of the ring
	}

	half := r.height * 0.5
	if absf(p.Y) > half {
		mask |= 0b100 // above or below the ring
	}

	sign := signf(p.Y)

	switch mask {
	case 0b001:
		return flat.Neg().UnitOrZero()
	case 0b010:
		return flat.UnitOrZero()
	case 0b100:
		return vec.V3(0, sign, 0)
	case 0b101:
		// Past the height band, inside the hole: point away from the inner
		// rim circle at the nearest face.
		ref := flat.UnitOrZero().Scale(r.innerRadius)
		ref.Y = sign * half
		return p.Sub(ref).UnitOrZero()
	case 0b110:
		ref := flat.UnitOrZero().Scale(r.outerRadius)
		ref.Y = sign * half
		return p.Sub(ref).UnitOrZero()
	default:
		// Within the solid band, never expected; default to vertical.
		return vec.V3(0, sign, 0)
	}
}

// Colliders returns the primitive decomposition for the representation
// selected by the current parameters.
func (r *Ring3) Colliders() []Collider3 {
	if r.dirty || r.cache == nil {
		switch r.Kind() {
		case RingTorus:
			r.cache = r.torus()
		case RingFlat:
			r.cache = r.flat()
		case RingTube:
			r.cache = r.tube()
		default:
			r.cache = r.bolt()
		}
		r.dirty = false
	}
	return r.cache
}

// chord approximates a rim circle of the given radius by the tessellation
// polygon: edge length 2*r*sin(pi/n), rim distance from center r*cos(pi/n).
func chord(radius float32, n int) (length, distance float32) {
	a := math.Pi / float64(n)
	sin, cos := math.Sincos(a)
	return 2 * radius * float32(sin), radius * float32(cos)
}

// ringAngles returns the n slice angles around the central axis, offset by
// a half step when slices must straddle the vertex positions.
func ringAngles(n int, halfStep bool) []float32 {
	step := 2 * math.Pi / float64(n)
	start := 0.0
	if halfStep {
		start = step * 0.5
	}
	angles := make([]float32, n)
	for i := range angles {
		angles[i] = float32(start + step*float64(i))
	}
	return angles
}

// ringPose places a base pose at every slice angle.
func ringPose(basis vec.Basis3, offset vec.Vec3, angle float32) vec.Transform3 {
	return vec.T3(basis.RotatedY(angle), offset.RotatedY(angle))
}

// convexPrism builds the convex fill: a prism over the tessellation polygon
// with the given half height.
func convexPrism(radius, halfHeight float32, n int) Convex3 {
	step := 2 * math.Pi / float64(n)
	points := make([]vec.Vec3, 0, n*2)
	for i := 0; i < n; i++ {
		pt := vec.V2(radius, 0).Rotated(float32(step * float64(i)))
		points = append(points,
			vec.V3(pt.X, halfHeight, pt.Y),
			vec.V3(pt.X, -halfHeight, pt.Y),
		)
	}
	return Convex3{Points: points}
}

func (r *Ring3) torus() []Collider3 {
	n := r.vertexCount
	length, distance := chord(r.outerRadius, n)
	rim := capsule3(r.edgeRadius, length)

	out := make([]Collider3, 0, n+1)
	for _, a := range ringAngles(n, true) {
		out = append(out, Collider3{
			Shape: rim,
			Pose:  ringPose(vec.Basis3AlongZ, vec.V3(distance, 0, 0), a),
		})
	}
	if r.innerRadius <= 0 {
		out = append(out, Collider3{
			Shape: convexPrism(r.outerRadius, r.edgeRadius, n),
			Pose:  vec.Transform3Identity,
		})
	}
	return out
}

func (r *Ring3) flat() []Collider3 {
	n := r.vertexCount
	width := r.outerRadius - r.innerRadius
	outerLen, outerDist := chord(r.outerRadius, n)
	innerLen, innerDist := chord(r.innerRadius, n)
	middleLen, middleDist := chord((r.outerRadius+r.innerRadius)*0.5, n)

	outer := capsule3(r.edgeRadius, outerLen)
	inner := capsule3(r.edgeRadius, innerLen)
	center := Box3{Size: vec.V3(width, r.edgeRadius*2, middleLen)}

	out := make([]Collider3, 0, n*3)
	for _, a := range ringAngles(n, true) {
		out = append(out,
			Collider3{outer, ringPose(vec.Basis3AlongZ, vec.V3(outerDist, 0, 0), a)},
			Collider3{inner, ringPose(vec.Basis3AlongZ, vec.V3(innerDist, 0, 0), a)},
			Collider3{center, ringPose(vec.Basis3AlongY, vec.V3(middleDist, 0, 0), a)},
		)
	}
	return out
}

func (r *Ring3) tube() []Collider3 {
	n := r.vertexCount
	length, distance := chord(r.outerRadius, n)
	half := r.height * 0.5

	rim := capsule3(r.edgeRadius, length)
	wall := Box3{Size: vec.V3(r.edgeRadius*2, r.height, length)}
	vertical := capsule3(r.edgeRadius, r.height)

	filled := r.innerRadius <= 0
	out := make([]Collider3, 0, n*4+1)
	for _, a := range ringAngles(n, true) {
		out = append(out,
			Collider3{rim, ringPose(vec.Basis3AlongZ, vec.V3(distance, half, 0), a)},
			Collider3{rim, ringPose(vec.Basis3AlongZ, vec.V3(distance, -half, 0), a)},
			Collider3{wall, ringPose(vec.Basis3AlongY, vec.V3(distance, 0, 0), a)},
		)
	}
	// Vertical capsules bridge the two rims at the vertex positions.
	for _, a := range ringAngles(n, false) {
		out = append(out, Collider3{vertical, ringPose(vec.Basis3AlongY, vec.V3(distance, 0, 0), a)})
	}
	if filled {
		out = append(out, Collider3{
			Shape: convexPrism(r.outerRadius, r.edgeRadius+half, n),
			Pose:  vec.Transform3Identity,
		})
	}
	return out
}

func (r *Ring3) bolt() []Collider3 {
	n := r.vertexCount
	width := r.outerRadius - r.innerRadius
	outerLen, outerDist := chord(r.outerRadius, n)
	innerLen, innerDist := chord(r.innerRadius, n)
	middleLen, middleDist := chord((r.outerRadius+r.innerRadius)*0.5, n)
	half := r.height * 0.5

	outer := capsule3(r.edgeRadius, outerLen)
	inner := capsule3(r.edgeRadius, innerLen)
	center := Box3{Size: vec.V3(width, r.height, middleLen)}
	vertical := capsule3(r.edgeRadius, r.height)

	out := make([]Collider3, 0, n*6)
	for _, a := range ringAngles(n, true) {
		out = append(out,
			Collider3{outer, ringPose(vec.Basis3AlongZ, vec.V3(outerDist, half, 0), a)},
			Collider3{outer, ringPose(vec.Basis3AlongZ, vec.V3(outerDist, -half, 0), a)},
			Collider3{inner, ringPose(vec.Basis3AlongZ, vec.V3(innerDist, half, 0), a)},
			Collider3{inner, ringPose(vec.Basis3AlongZ, vec.V3(innerDist, -half, 0), a)},
			Collider3{center, ringPose(vec.Basis3AlongY, vec.V3(middleDist, 0, 0), a)},
		)
	}
	for _, a := range ringAngles(n, false) {
		out = append(out, Collider3{vertical, ringPose(vec.Basis3AlongY, vec.V3(outerDist, 0, 0), a)})
	}
	return out
}
