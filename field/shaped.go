package field

import (
	"github.com/fieldway/updraft/shape"
	"github.com/fieldway/updraft/vec"
)

// Shaped2 is a gravity field backed by a shape. The field's own LocalUp is
// always zero: the authoritative direction for shape-backed fields comes
// from the shape itself and is read with ShapeUp. LocalUp/GlobalUp exist to
// satisfy the Field contract used by level-based queries.
type Shaped2 struct {
	Node2

	Priority int

	// Shape supplies the direction and collision geometry. Nil yields zero
	// directions and no colliders.
	Shape shape.Shape2

	// BuildCollider requests that the host generate a static body from the
	// shape's collider list.
	BuildCollider bool

	Inverted bool
}

// NewShaped2 creates a shape-backed field with no shape configured.
func NewShaped2() *Shaped2 {
	return &Shaped2{Node2: NewNode2()}
}

// Level returns the priority level.
func (f *Shaped2) Level() int { return f.Priority }

// LocalUp is always zero for shape-backed fields.
func (f *Shaped2) LocalUp(vec.Vec2) vec.Vec2 {
	return vec.Vec2{}
}

// GlobalUp is always zero for shape-backed fields.
func (f *Shaped2) GlobalUp(p vec.Vec2) vec.Vec2 {
	return f.rotate(f.LocalUp(p))
}

// ShapeUp evaluates the wrapped shape at a world point and rotates the
// result into world orientation.
func (f *Shaped2) ShapeUp(p vec.Vec2) vec.Vec2 {
	if f.Shape == nil {
		return vec.Vec2{}
	}
	up := f.Shape.Up(f.toLocal(p))
	return f.rotate(invert2(up, f.Inverted))
}

// Colliders returns the wrapped shape's collider list, or nil without a
// shape.
func (f *Shaped2) Colliders() []shape.Collider2 {
	if f.Shape == nil {
		return nil
	}
	return f.Shape.Colliders()
}

// Shaped3 is the 3D shape-backed field.
type Shaped3 struct {
	Node3

	Priority      int
	Shape         shape.Shape3
	BuildCollider bool
	Inverted      bool
}

// NewShaped3 creates a shape-backed field with no shape configured.
func NewShaped3() *Shaped3 {
	return &Shaped3{Node3: NewNode3()}
}

// Level returns the priority level.
func (f *Shaped3) Level() int { return f.Priority }

// LocalUp is always zero for shape-backed fields.
func (f *Shaped3) LocalUp(vec.Vec3) vec.Vec3 {
	return vec.Vec3{}
}

// GlobalUp is always zero for shape-backed fields.
func (f *Shaped3) GlobalUp(p vec.Vec3) vec.Vec3 {
	return f.rotate(f.LocalUp(p))
}

// ShapeUp evaluates the wrapped shape at a world point and rotates the
// result into world orientation.
func (f *Shaped3) ShapeUp(p vec.Vec3) vec.Vec3 {
	if f.Shape == nil {
		return vec.Vec3{}
	}
	up := f.Shape.Up(f.toLocal(p))
	return f.rotate(invert3(up, f.Inverted))
}

// Colliders returns the wrapped shape's collider list, or nil without a
// shape.
func (f *Shaped3) Colliders() []shape.Collider3 {
	if f.Shape == nil {
		return nil
	}
	return f.Shape.Colliders()
}
