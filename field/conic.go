package field

import "github.com/fieldway/updraft/vec"

// Conic3 is an axial field whose direction lines tilt toward a cone apex:
// before normalizing, the coordinate along the axis is scaled by
// radius*|flattened| and the perpendicular coordinates by height. At
// radius zero the tilt vanishes and the field degenerates to Axial3.
type Conic3 struct {
	Node3

	Priority int

	// Height and Radius describe the cone proportions; non-negative.
	// Degenerate values produce zero directions rather than errors.
	Height float32
	Radius float32

	Axis     vec.Axis3
	Inverted bool
}

// NewConic3 creates a conic field around the Y axis with height 1 and
// radius 0.5.
func NewConic3() *Conic3 {
	return &Conic3{Node3: NewNode3(), Height: 1, Radius: 0.5, Axis: vec.Axis3Y}
}

// Level returns the priority level.
func (f *Conic3) Level() int { return f.Priority }

// LocalUp tilts the flattened radial direction toward the cone apex.
func (f *Conic3) LocalUp(p vec.Vec3) vec.Vec3 {
	v := vec.Flatten3(f.toLocal(p), f.Axis)
	length := v.Length()

	switch f.Axis {
	case vec.Axis3X:
		v.X = f.Radius * length
		v.Y *= f.Height
		v.Z *= f.Height
	case vec.Axis3Z:
		v.X *= f.Height
		v.Y *= f.Height
		v.Z = f.Radius * length
	default:
		v.X *= f.Height
		v.Y = f.Radius * length
		v.Z *= f.Height
	}
	return invert3(v.UnitOrZero(), f.Inverted)
}

// GlobalUp rotates the conic direction into world orientation.
func (f *Conic3) GlobalUp(p vec.Vec3) vec.Vec3 {
	return f.rotate(f.LocalUp(p))
}
