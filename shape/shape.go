// Package shape provides the geometry backing shape-based gravity fields:
// an up-direction function over local space plus a rounded collision
// decomposition into primitive descriptors (boxes, capsules, convex hulls).
//
// Collider lists are generated lazily and memoized; every parameter setter
// invalidates the cache and the next Colliders call regenerates it. Shapes
// are not safe for concurrent mutation; the caller serializes writes against
// reads, typically on the owning engine's main or physics step.
package shape

import "github.com/fieldway/updraft/vec"

// Shape2 is a 2D gravity shape.
type Shape2 interface {
	// Up returns the up direction for a point in the shape's local space.
	Up(p vec.Vec2) vec.Vec2

	// Colliders returns the primitive decomposition approximating the
	// shape. The list is cached until a parameter changes.
	Colliders() []Collider2
}

// Shape3 is a 3D gravity shape.
type Shape3 interface {
	Up(p vec.Vec3) vec.Vec3
	Colliders() []Collider3
}

// Primitive2 is a 2D collision primitive descriptor. The collision backend
// that consumes these is external; descriptors carry parameters only.
type Primitive2 interface {
	primitive2()
}

// Primitive3 is a 3D collision primitive descriptor.
type Primitive3 interface {
	primitive3()
}

// Box2 is an axis-aligned rectangle of the given full size, centered on its
// pose.
type Box2 struct {
	Size vec.Vec2
}

// Capsule2 is a 2D capsule. Height is the total height including both end
// caps; the long axis is the pose's Y axis.
type Capsule2 struct {
	Radius, Height float32
}

// Box3 is a box of the given full size, centered on its pose.
type Box3 struct {
	Size vec.Vec3
}

// Capsule3 is a 3D capsule. Height is the total height including both end
// caps; the long axis is the pose's Y axis.
type Capsule3 struct {
	Radius, Height float32
}

// Convex3 is a convex hull over the given points.
type Convex3 struct {
	Points []vec.Vec3
}

func (Box2) primitive2()     {}
func (Capsule2) primitive2() {}
func (Box3) primitive3()     {}
func (Capsule3) primitive3() {}
func (Convex3) primitive3()  {}

// Collider2 pairs a primitive with its pose in the shape's local space.
type Collider2 struct {
	Shape Primitive2
	Pose  vec.Transform2
}

// Collider3 pairs a primitive with its pose in the shape's local space.
type Collider3 struct {
	Shape Primitive3
	Pose  vec.Transform3
}

// capsule3 builds a capsule whose cylinder section has the given height.
func capsule3(radius, height float32) Capsule3 {
	return Capsule3{Radius: radius, Height: height + radius*2}
}

func capsule2(radius, height float32) Capsule2 {
	return Capsule2{Radius: radius, Height: height + radius*2}
}
