// Package field defines gravity fields: volumes that assign a physically
// meaningful up direction to every point in space. Overlapping fields are
// ranked by an integer priority level; see the query package for the
// aggregation rules.
//
// Every concrete field carries a world pose (Node2/Node3) supplied by the
// owning scene. LocalUp evaluates the direction in the field's local frame
// for a world-space point; GlobalUp is the same direction rotated into world
// orientation. Both are unit length or exactly zero.
package field

import (
	"math"

	"github.com/fieldway/updraft/vec"
)

// Field2 is a 2D gravity field.
type Field2 interface {
	// Level returns the priority level; higher wins, ties blend.
	Level() int

	// LocalUp returns the up direction for a world point, expressed in the
	// field's local frame.
	LocalUp(p vec.Vec2) vec.Vec2

	// GlobalUp returns the up direction for a world point in world space.
	GlobalUp(p vec.Vec2) vec.Vec2
}

// Field3 is a 3D gravity field.
type Field3 interface {
	Level() int
	LocalUp(p vec.Vec3) vec.Vec3
	GlobalUp(p vec.Vec3) vec.Vec3
}

// Posed3 is a 3D field together with its world pose. Bridge fields need the
// pose of the fields they reference to place delimiting planes.
type Posed3 interface {
	Field3
	Transform() vec.Transform3
}

// Node2 holds a field's world pose. It stands in for the owning scene's
// transform system; the scene writes the pose, the field reads it.
type Node2 struct {
	transform vec.Transform2
}

// NewNode2 creates a node at the world origin with identity orientation.
func NewNode2() Node2 {
	return Node2{transform: vec.Transform2Identity}
}

// Transform returns the world pose.
func (n *Node2) Transform() vec.Transform2 { return n.transform }

// SetTransform sets the world pose. The basis must be orthonormal.
func (n *Node2) SetTransform(t vec.Transform2) { n.transform = t }

// toLocal maps a world point into the node's local space.
func (n *Node2) toLocal(p vec.Vec2) vec.Vec2 {
	return n.transform.ApplyInverse(p)
}

// rotate maps a local direction into world space.
func (n *Node2) rotate(dir vec.Vec2) vec.Vec2 {
	return n.transform.Basis.MulVec(dir)
}

// Node3 holds a 3D field's world pose.
type Node3 struct {
	transform vec.Transform3
}

// NewNode3 creates a node at the world origin with identity orientation.
func NewNode3() Node3 {
	return Node3{transform: vec.Transform3Identity}
}

// Transform returns the world pose.
func (n *Node3) Transform() vec.Transform3 { return n.transform }

// SetTransform sets the world pose. The basis must be orthonormal.
func (n *Node3) SetTransform(t vec.Transform3) { n.transform = t }

func (n *Node3) toLocal(p vec.Vec3) vec.Vec3 {
	return n.transform.ApplyInverse(p)
}

func (n *Node3) rotate(dir vec.Vec3) vec.Vec3 {
	return n.transform.Basis.MulVec(dir)
}

// invert2 negates the direction when the field is inverted.
func invert2(up vec.Vec2, inverted bool) vec.Vec2 {
	if inverted {
		return up.Neg()
	}
	return up
}

func invert3(up vec.Vec3, inverted bool) vec.Vec3 {
	if inverted {
		return up.Neg()
	}
	return up
}

func tanf(x float32) float32 {
	return float32(math.Tan(float64(x)))
}
