package field

import "github.com/fieldway/updraft/vec"

// Flat2 is a uniform field: up is a constant axis direction regardless of
// position.
type Flat2 struct {
	Node2

	// Priority is the field's priority level.
	Priority int

	// Axis selects the up axis.
	Axis vec.Axis2

	// Inverted flips the direction.
	Inverted bool
}

// NewFlat2 creates a flat field pointing up along the Y axis.
func NewFlat2() *Flat2 {
	return &Flat2{Node2: NewNode2(), Axis: vec.Axis2Y}
}

// Level returns the priority level.
func (f *Flat2) Level() int { return f.Priority }

// LocalUp is the selected axis unit vector; position is ignored.
func (f *Flat2) LocalUp(vec.Vec2) vec.Vec2 {
	return invert2(f.Axis.Unit(), f.Inverted)
}

// GlobalUp rotates the constant axis into world orientation.
func (f *Flat2) GlobalUp(p vec.Vec2) vec.Vec2 {
	return f.rotate(f.LocalUp(p))
}

// Flat3 is the 3D uniform field.
type Flat3 struct {
	Node3

	Priority int
	Axis     vec.Axis3
	Inverted bool
}

// NewFlat3 creates a flat field pointing up along the Y axis.
func NewFlat3() *Flat3 {
	return &Flat3{Node3: NewNode3(), Axis: vec.Axis3Y}
}

// Level returns the priority level.
func (f *Flat3) Level() int { return f.Priority }

// LocalUp is the selected axis unit vector; position is ignored.
func (f *Flat3) LocalUp(vec.Vec3) vec.Vec3 {
	return invert3(f.Axis.Unit(), f.Inverted)
}

// GlobalUp rotates the constant axis into world orientation.
func (f *Flat3) GlobalUp(p vec.Vec3) vec.Vec3 {
	return f.rotate(f.LocalUp(p))
}
