// Package space provides a reference spatial index for gravity fields,
// backed by an ECS world. Each registered field occupies an axis-aligned
// volume on a set of collision layers; point queries return the fields
// whose volume contains the point and whose layers intersect the query
// mask. The 3D world also resolves field handles, so bridge fields can
// reference their neighbors through it.
package space

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/fieldway/updraft/field"
	"github.com/fieldway/updraft/vec"
)

// Volume2 is an axis-aligned box in world space.
type Volume2 struct {
	Min, Max vec.Vec2
}

// Contains reports whether the point lies inside the volume, boundaries
// included.
func (v Volume2) Contains(p vec.Vec2) bool {
	return p.X >= v.Min.X && p.X <= v.Max.X &&
		p.Y >= v.Min.Y && p.Y <= v.Max.Y
}

// Volume3 is an axis-aligned box in world space.
type Volume3 struct {
	Min, Max vec.Vec3
}

// Contains reports whether the point lies inside the volume, boundaries
// included.
func (v Volume3) Contains(p vec.Vec3) bool {
	return p.X >= v.Min.X && p.X <= v.Max.X &&
		p.Y >= v.Min.Y && p.Y <= v.Max.Y &&
		p.Z >= v.Min.Z && p.Z <= v.Max.Z
}

// occupant ties an entity to its registered field.
type occupant struct {
	Handle field.Handle
	Layers uint32
}

// World3 indexes 3D gravity fields.
type World3 struct {
	world  *ecs.World
	mapper *ecs.Map2[Volume3, occupant]
	filter ecs.Filter2[Volume3, occupant]

	next     field.Handle
	fields   map[field.Handle]field.Posed3
	entities map[field.Handle]ecs.Entity
}

// NewWorld3 creates an empty index.
func NewWorld3() *World3 {
	world := ecs.NewWorld()
	return &World3{
		world:    world,
		mapper:   ecs.NewMap2[Volume3, occupant](world),
		filter:   *ecs.NewFilter2[Volume3, occupant](world),
		fields:   make(map[field.Handle]field.Posed3),
		entities: make(map[field.Handle]ecs.Entity),
	}
}

// Add registers a field with its bounding volume and collision layers,
// returning the handle other fields reference it by.
func (w *World3) Add(f field.Posed3, volume Volume3, layers uint32) field.Handle {
	w.next++
	if w.next == field.NoHandle {
		w.next = 1
	}
	handle := w.next

	occ := occupant{Handle: handle, Layers: layers}
	w.entities[handle] = w.mapper.NewEntity(&volume, &occ)
	w.fields[handle] = f
	return handle
}

// Remove unregisters a field; its handle stops resolving.
func (w *World3) Remove(h field.Handle) {
	entity, ok := w.entities[h]
	if !ok {
		return
	}
	w.mapper.Remove(entity)
	delete(w.entities, h)
	delete(w.fields, h)
}

// Resolve implements field.Lookup.
func (w *World3) Resolve(h field.Handle) (field.Posed3, bool) {
	f, ok := w.fields[h]
	return f, ok
}

// QueryPoint returns up to max fields whose volume contains the position
// and whose layers intersect the mask. Implements query.Space3.
func (w *World3) QueryPoint(pos vec.Vec3, mask uint32, max int) []field.Field3 {
	if max <= 0 {
		return nil
	}

	var out []field.Field3
	query := w.filter.Query()
	for query.Next() {
		volume, occ := query.Get()
		if occ.Layers&mask == 0 || !volume.Contains(pos) {
			continue
		}
		if len(out) == max {
			continue
		}
		if f, ok := w.fields[occ.Handle]; ok {
			out = append(out, f)
		}
	}
	return out
}

// World2 indexes 2D gravity fields.
type World2 struct {
	world  *ecs.World
	mapper *ecs.Map2[Volume2, occupant]
	filter ecs.Filter2[Volume2, occupant]

	next     field.Handle
	fields   map[field.Handle]field.Field2
	entities map[field.Handle]ecs.Entity
}

// NewWorld2 creates an empty index.
func NewWorld2() *World2 {
	world := ecs.NewWorld()
	return &World2{
		world:    world,
		mapper:   ecs.NewMap2[Volume2, occupant](world),
		filter:   *ecs.NewFilter2[Volume2, occupant](world),
		fields:   make(map[field.Handle]field.Field2),
		entities: make(map[field.Handle]ecs.Entity),
	}
}

// Add registers a field with its bounding volume and collision layers.
func (w *World2) Add(f field.Field2, volume Volume2, layers uint32) field.Handle {
	w.next++
	if w.next == field.NoHandle {
		w.next = 1
	}
	handle := w.next

	occ := occupant{Handle: handle, Layers: layers}
	w.entities[handle] = w.mapper.NewEntity(&volume, &occ)
	w.fields[handle] = f
	return handle
}

// Remove unregisters a field.
func (w *World2) Remove(h field.Handle) {
	entity, ok := w.entities[h]
	if !ok {
		return
	}
	w.mapper.Remove(entity)
	delete(w.entities, h)
	delete(w.fields, h)
}

// QueryPoint returns up to max fields whose volume contains the position
// and whose layers intersect the mask. Implements query.Space2.
func (w *World2) QueryPoint(pos vec.Vec2, mask uint32, max int) []field.Field2 {
	if max <= 0 {
		return nil
	}

	var out []field.Field2
	query := w.filter.Query()
	for query.Next() {
		volume, occ := query.Get()
		if occ.Layers&mask == 0 || !volume.Contains(pos) {
			continue
		}
		if len(out) == max {
			continue
		}
		if f, ok := w.fields[occ.Handle]; ok {
			out = append(out, f)
		}
	}
	return out
}
