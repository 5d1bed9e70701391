package shape

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/fieldway/updraft/vec"
)

func TestRingKindSelection(t *testing.T) {
	tests := []struct {
		name          string
		outer, inner  float32
		height        float32
		want          RingKind
	}{
		{"solid disc", 10, 0, 0, RingTorus},
		{"thin ring", 10, 10, 0, RingTorus},
		{"annulus", 10, 4, 0, RingFlat},
		{"filled cylinder", 10, 0, 5, RingTube},
		{"thin cylinder", 10, 10, 5, RingTube},
		{"bolt", 10, 4, 5, RingBolt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRing3()
			r.SetOuterRadius(tt.outer)
			r.SetInnerRadius(tt.inner)
			r.SetHeight(tt.height)
			if got := r.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRingColliderCounts(t *testing.T) {
	const n = 8
	tests := []struct {
		name         string
		outer, inner float32
		height       float32
		want         int
	}{
		// Torus: n rim capsules + 1 fill when solid.
		{"solid disc", 10, 0, 0, n + 1},
		{"thin ring", 10, 10, 0, n},
		// Flat: outer + inner + connector per slice.
		{"annulus", 10, 4, 0, 3 * n},
		// Tube: two rims + wall per slice, n verticals, + fill when solid.
		{"filled cylinder", 10, 0, 5, 4*n + 1},
		{"thin cylinder", 10, 10, 5, 4 * n},
		// Bolt: four rims + connector per slice, n verticals.
		{"bolt", 10, 4, 5, 6 * n},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRing3()
			r.SetVertexCount(n)
			r.SetOuterRadius(tt.outer)
			r.SetInnerRadius(tt.inner)
			r.SetHeight(tt.height)
			if got := len(r.Colliders()); got != tt.want {
				t.Errorf("collider count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRingRadiusClamp(t *testing.T) {
	r := NewRing3()
	r.SetOuterRadius(10)
	r.SetInnerRadius(4)

	// Lowering the outer radius drags the inner radius down with it.
	r.SetOuterRadius(2)
	if r.InnerRadius() != 2 {
		t.Errorf("inner radius = %v, want 2", r.InnerRadius())
	}

	// Raising the inner radius drags the outer radius up with it.
	r.SetInnerRadius(7)
	if r.OuterRadius() != 7 {
		t.Errorf("outer radius = %v, want 7", r.OuterRadius())
	}
}

func TestRingVertexCountClamp(t *testing.T) {
	r := NewRing3()
	r.SetVertexCount(1)
	if r.VertexCount() != 3 {
		t.Errorf("vertex count = %d, want 3", r.VertexCount())
	}
}

func TestRingChord(t *testing.T) {
	// For a hexagon, sin(pi/6) = 0.5 and cos(pi/6) = sqrt(3)/2.
	length, distance := chord(2, 6)
	if !scalar.EqualWithinAbs(float64(length), 2, tol) {
		t.Errorf("edge length = %v, want 2", length)
	}
	if !scalar.EqualWithinAbs(float64(distance), 2*math.Sqrt(3)/2, tol) {
		t.Errorf("rim distance = %v, want sqrt(3)", distance)
	}
}

func TestRingUp(t *testing.T) {
	r := NewRing3()
	r.SetOuterRadius(10)
	r.SetInnerRadius(4)
	r.SetHeight(2)

	tests := []struct {
		name  string
		point vec.Vec3
		want  vec.Vec3
	}{
		{"outside", vec.V3(20, 0, 0), vec.V3(1, 0, 0)},
		{"in the hole", vec.V3(2, 0, 0), vec.V3(-1, 0, 0)},
		{"above the band", vec.V3(7, 5, 0), vec.V3(0, 1, 0)},
		{"below the band", vec.V3(7, -5, 0), vec.V3(0, -1, 0)},
		{
			// Above and outside: away from the outer rim circle at the top
			// face, reference point (10, 1, 0).
			"above outside",
			vec.V3(13, 5, 0),
			vec.V3(3, 4, 0).UnitOrZero(),
		},
		{
			// Above and in the hole: away from the inner rim circle at the
			// top face, reference point (4, 1, 0).
			"above hole",
			vec.V3(1, 5, 0),
			vec.V3(-3, 4, 0).UnitOrZero(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approx3(t, r.Up(tt.point), tt.want, "Up")
		})
	}
}

func TestRingTorusGeometry(t *testing.T) {
	r := NewRing3()
	r.SetVertexCount(6)
	r.SetOuterRadius(10)
	r.SetEdgeRadius(0.5)

	cols := r.Colliders()
	_, distance := chord(10, 6)

	// Rim capsules sit on the polygon rim, at the ring's height plane.
	for _, col := range cols {
		cap, ok := col.Shape.(Capsule3)
		if !ok {
			continue
		}
		length, _ := chord(10, 6)
		if !scalar.EqualWithinAbs(float64(cap.Height), float64(length+1), tol) {
			t.Errorf("rim capsule height = %v, want %v", cap.Height, length+1)
		}
		d := vec.FlattenY(col.Pose.Origin).Length()
		if !scalar.EqualWithinAbs(float64(d), float64(distance), 1e-4) {
			t.Errorf("rim capsule distance = %v, want %v", d, distance)
		}
	}

	// The solid disc carries a convex prism fill with 2n points.
	fill, ok := cols[len(cols)-1].Shape.(Convex3)
	if !ok {
		t.Fatalf("last collider = %T, want Convex3 fill", cols[len(cols)-1].Shape)
	}
	if len(fill.Points) != 12 {
		t.Errorf("fill point count = %d, want 12", len(fill.Points))
	}
}

func TestRingCacheInvalidation(t *testing.T) {
	r := NewRing3()
	r.SetVertexCount(8)
	if got := len(r.Colliders()); got != 9 {
		t.Fatalf("initial collider count = %d, want 9", got)
	}
	r.SetHeight(3)
	if got := len(r.Colliders()); got != 4*8+1 {
		t.Errorf("collider count after SetHeight = %d, want 33", got)
	}
}
