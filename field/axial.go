package field

import "github.com/fieldway/updraft/vec"

// Axial3 is a field radial around a chosen axis: the point is flattened
// onto the plane orthogonal to the axis before normalizing, so up always
// points straight away from the axis line.
type Axial3 struct {
	Node3

	Priority int
	Axis     vec.Axis3
	Inverted bool
}

// NewAxial3 creates an axial field around the Y axis.
func NewAxial3() *Axial3 {
	return &Axial3{Node3: NewNode3(), Axis: vec.Axis3Y}
}

// Level returns the priority level.
func (f *Axial3) Level() int { return f.Priority }

// LocalUp flattens the point along the axis and normalizes. Points on the
// axis line yield zero.
func (f *Axial3) LocalUp(p vec.Vec3) vec.Vec3 {
	up := vec.Flatten3(f.toLocal(p), f.Axis).UnitOrZero()
	return invert3(up, f.Inverted)
}

// GlobalUp rotates the axial direction into world orientation.
func (f *Axial3) GlobalUp(p vec.Vec3) vec.Vec3 {
	return f.rotate(f.LocalUp(p))
}
