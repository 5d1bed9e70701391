package field

import "github.com/fieldway/updraft/vec"

// Center2 is a radial field: up points away from the field's origin. At the
// origin itself the direction is zero.
type Center2 struct {
	Node2

	Priority int
	Inverted bool
}

// NewCenter2 creates a radial 2D field.
func NewCenter2() *Center2 {
	return &Center2{Node2: NewNode2()}
}

// Level returns the priority level.
func (f *Center2) Level() int { return f.Priority }

// LocalUp is the direction from the field origin toward the point.
func (f *Center2) LocalUp(p vec.Vec2) vec.Vec2 {
	return invert2(f.toLocal(p).UnitOrZero(), f.Inverted)
}

// GlobalUp rotates the radial direction into world orientation.
func (f *Center2) GlobalUp(p vec.Vec2) vec.Vec2 {
	return f.rotate(f.LocalUp(p))
}

// Center3 is the 3D radial field.
type Center3 struct {
	Node3

	Priority int
	Inverted bool
}

// NewCenter3 creates a radial 3D field.
func NewCenter3() *Center3 {
	return &Center3{Node3: NewNode3()}
}

// Level returns the priority level.
func (f *Center3) Level() int { return f.Priority }

// LocalUp is the direction from the field origin toward the point.
func (f *Center3) LocalUp(p vec.Vec3) vec.Vec3 {
	return invert3(f.toLocal(p).UnitOrZero(), f.Inverted)
}

// GlobalUp rotates the radial direction into world orientation.
func (f *Center3) GlobalUp(p vec.Vec3) vec.Vec3 {
	return f.rotate(f.LocalUp(p))
}
