// Package query resolves the effective up direction at a point from the
// gravity fields that cover it. Fields are gathered through a spatial
// collaborator and aggregated by priority level: only the highest level
// present contributes, ties on that level blend by summation.
package query

import (
	"github.com/fieldway/updraft/field"
	"github.com/fieldway/updraft/vec"
)

// Default query parameters.
const (
	DefaultCollisionMask uint32 = 0b1
	DefaultMaxResults           = 32
)

// Space2 is the spatial collaborator for 2D queries. QueryPoint returns the
// fields whose volume contains the position, filtered by the collision
// mask and capped at max entries.
type Space2 interface {
	QueryPoint(pos vec.Vec2, mask uint32, max int) []field.Field2
}

// Space3 is the spatial collaborator for 3D queries.
type Space3 interface {
	QueryPoint(pos vec.Vec3, mask uint32, max int) []field.Field3
}

// Result2 is a resolved 2D query: the blended direction and the fields of
// the winning level that produced it. Callers use Fields to attach to the
// volumes governing a position.
type Result2 struct {
	Up     vec.Vec2
	Fields []field.Field2
}

// Result3 is a resolved 3D query.
type Result3 struct {
	Up     vec.Vec3
	Fields []field.Field3
}

// PointQuery2 carries the parameters of a repeated 2D up-direction query.
// The zero value is not ready; use NewPointQuery2 for the defaults.
type PointQuery2 struct {
	CollisionMask uint32
	MaxResults    int
}

// NewPointQuery2 returns a query with the default mask and result cap.
func NewPointQuery2() PointQuery2 {
	return PointQuery2{CollisionMask: DefaultCollisionMask, MaxResults: DefaultMaxResults}
}

// Direction resolves the up direction at a position. The boolean reports
// whether any field covered the point; the result's direction is unit
// length or zero and its field list holds the winning-level contributors.
func (q PointQuery2) Direction(space Space2, pos vec.Vec2) (Result2, bool) {
	fields := space.QueryPoint(pos, q.CollisionMask, q.MaxResults)
	if len(fields) == 0 {
		return Result2{}, false
	}

	level := fields[0].Level()
	sum := fields[0].GlobalUp(pos)
	winners := append([]field.Field2(nil), fields[0])
	for _, f := range fields[1:] {
		switch l := f.Level(); {
		case l > level:
			level = l
			sum = f.GlobalUp(pos)
			winners = append(winners[:0], f)
		case l == level:
			sum = sum.Add(f.GlobalUp(pos))
			winners = append(winners, f)
		}
	}
	return Result2{Up: sum.UnitOrZero(), Fields: winners}, true
}

// PointQuery3 carries the parameters of a repeated 3D up-direction query.
type PointQuery3 struct {
	CollisionMask uint32
	MaxResults    int
}

// NewPointQuery3 returns a query with the default mask and result cap.
func NewPointQuery3() PointQuery3 {
	return PointQuery3{CollisionMask: DefaultCollisionMask, MaxResults: DefaultMaxResults}
}

// Direction resolves the up direction at a position. The boolean reports
// whether any field covered the point; the result's direction is unit
// length or zero and its field list holds the winning-level contributors.
func (q PointQuery3) Direction(space Space3, pos vec.Vec3) (Result3, bool) {
	fields := space.QueryPoint(pos, q.CollisionMask, q.MaxResults)
	if len(fields) == 0 {
		return Result3{}, false
	}

	level := fields[0].Level()
	sum := fields[0].GlobalUp(pos)
	winners := append([]field.Field3(nil), fields[0])
	for _, f := range fields[1:] {
		switch l := f.Level(); {
		case l > level:
			level = l
			sum = f.GlobalUp(pos)
			winners = append(winners[:0], f)
		case l == level:
			sum = sum.Add(f.GlobalUp(pos))
			winners = append(winners, f)
		}
	}
	return Result3{Up: sum.UnitOrZero(), Fields: winners}, true
}
