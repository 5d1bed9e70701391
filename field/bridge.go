package field

import "github.com/fieldway/updraft/vec"

// BridgePoint references another gravity field together with a delimiting
// plane expressed in that field's local space. Points in front of the plane
// are blended with the other bridge points; points behind it pull from the
// referenced field directly. The reference is a non-owning handle resolved
// through a Lookup; a handle that no longer resolves contributes nothing.
type BridgePoint struct {
	Ref   Handle
	Plane vec.Plane
}

// Bridge3 smoothly interpolates the up direction across several referenced
// fields near their shared boundaries. Inside the convex region bounded by
// all delimiting planes it uses tangent-half-angle (mean-value-coordinate
// style) weights over the projected directions; outside it falls back to
// inverse-distance weighting of the fields whose plane the point is behind.
type Bridge3 struct {
	Node3

	Priority int

	lookup Lookup
	points []BridgePoint
}

// NewBridge3 creates a bridge resolving its references through the given
// lookup.
func NewBridge3(lookup Lookup) *Bridge3 {
	return &Bridge3{Node3: NewNode3(), lookup: lookup}
}

// Level returns the priority level.
func (b *Bridge3) Level() int { return b.Priority }

// Points returns the configured bridge points.
func (b *Bridge3) Points() []BridgePoint { return b.points }

// SetPoints sets the bridge points. The tangent-half-angle weighting
// assumes the points are configured in consistent angular order around the
// blended region; out-of-order points degrade the blend silently.
func (b *Bridge3) SetPoints(points []BridgePoint) {
	b.points = points
}

// bridgeInside carries the per-point state for blending within the convex
// region.
type bridgeInside struct {
	up          vec.Vec3
	translation vec.Vec3 // from the plane projection toward the point
	distance    float32
	tanAngle    float32 // tan of half the angle to the next translation
	weight      float32
}

// bridgeOutside carries the per-point state for the fallback blend.
type bridgeOutside struct {
	up       vec.Vec3
	distance float32
}

// GlobalUp blends the referenced fields' directions at a world point. With
// no points configured, or none resolvable, the result is zero.
func (b *Bridge3) GlobalUp(position vec.Vec3) vec.Vec3 {
	if len(b.points) == 0 || b.lookup == nil {
		return vec.Vec3{}
	}

	above := make([]bridgeInside, 0, len(b.points))
	below := make([]bridgeOutside, 0, len(b.points))

	for _, point := range b.points {
		ref, ok := b.lookup.Resolve(point.Ref)
		if !ok {
			continue
		}
		plane := point.Plane.Transformed(ref.Transform())

		if plane.IsPointOver(position) {
			// Project the position onto the plane and evaluate the field
			// there; the translation back toward the point drives the
			// angular weighting.
			projected := plane.Project(position)
			above = append(above, bridgeInside{
				up:          ref.GlobalUp(projected),
				translation: position.Sub(projected),
				distance:    plane.DistanceTo(position),
			})
		} else {
			below = append(below, bridgeOutside{
				up:       ref.GlobalUp(position),
				distance: plane.DistanceTo(position),
			})
		}
	}

	if len(below) > 0 {
		return blendOutside(below)
	}
	return blendInside(above)
}

// LocalUp is the blended world direction brought back into the bridge's
// own frame; bridges reason primarily in world space.
func (b *Bridge3) LocalUp(position vec.Vec3) vec.Vec3 {
	return b.Transform().Basis.Inverse().MulVec(b.GlobalUp(position))
}

// blendInside computes the mean-value-coordinate style blend: the weight of
// each point combines the tangents of the half angles to its neighbors,
// divided by the plane distance. The weights sum to ~1 by construction for
// points in consistent angular order.
func blendInside(above []bridgeInside) vec.Vec3 {
	switch len(above) {
	case 0:
		return vec.Vec3{}
	case 1:
		return above[0].up
	}

	last := len(above) - 1
	for i := range above {
		next := above[(i+1)%len(above)].translation
		angle := above[i].translation.AngleTo(next)
		above[i].tanAngle = tanf(angle * 0.5)
	}
	for i := range above {
		prev := above[(i+last)%len(above)].tanAngle
		above[i].weight = (prev + above[i].tanAngle) / above[i].distance
	}

	var sum vec.Vec3
	for _, data := range above {
		sum = sum.Add(data.up.Scale(data.weight))
	}
	return sum.UnitOrZero()
}

// blendOutside computes the inverse-distance fallback used when the point
// is outside the convex region of delimiters.
func blendOutside(below []bridgeOutside) vec.Vec3 {
	if len(below) == 1 {
		return below[0].up
	}

	// A point exactly on a delimiting plane belongs to that plane's field;
	// its inverse-distance weight would otherwise be infinite.
	for _, data := range below {
		if data.distance == 0 {
			return data.up
		}
	}

	var denominator float32
	weights := make([]float32, len(below))
	for i, data := range below {
		weights[i] = 1 / data.distance
		denominator += weights[i]
	}

	var sum vec.Vec3
	for i, data := range below {
		sum = sum.Add(data.up.Scale(weights[i] / denominator))
	}
	return sum.UnitOrZero()
}
