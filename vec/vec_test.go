package vec

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-5

func approxV3(t *testing.T, got, want Vec3, msg string) {
	t.Helper()
	if !scalar.EqualWithinAbs(float64(got.X), float64(want.X), tol) ||
		!scalar.EqualWithinAbs(float64(got.Y), float64(want.Y), tol) ||
		!scalar.EqualWithinAbs(float64(got.Z), float64(want.Z), tol) {
		t.Errorf("%s = %v, want %v", msg, got, want)
	}
}

// TestUnitOrZero verifies the normalization contract: a unit vector or
// exactly zero, never NaN or Inf, for random inputs including the zero
// vector.
func TestUnitOrZero(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	check := func(v Vec3) {
		u := v.UnitOrZero()
		l := float64(u.Length())
		if math.IsNaN(l) || math.IsInf(l, 0) {
			t.Fatalf("UnitOrZero(%v) has invalid length %v", v, l)
		}
		if l != 0 && !scalar.EqualWithinAbs(l, 1, tol) {
			t.Errorf("UnitOrZero(%v) length = %v, want 1 or 0", v, l)
		}
	}

	check(Vec3{})
	check(Vec3{0, -0, 0})
	for i := 0; i < 1000; i++ {
		v := Vec3{
			rng.Float32()*200 - 100,
			rng.Float32()*200 - 100,
			rng.Float32()*200 - 100,
		}
		check(v)
	}

	if got := (Vec3{}).UnitOrZero(); got != (Vec3{}) {
		t.Errorf("UnitOrZero(zero) = %v, want zero", got)
	}
	if got := (Vec2{}).UnitOrZero(); got != (Vec2{}) {
		t.Errorf("UnitOrZero(zero 2D) = %v, want zero", got)
	}
}

func TestFlatten(t *testing.T) {
	v := Vec3{1, 2, 3}
	tests := []struct {
		name string
		axis Axis3
		want Vec3
	}{
		{"X", Axis3X, Vec3{0, 2, 3}},
		{"Y", Axis3Y, Vec3{1, 0, 3}},
		{"Z", Axis3Z, Vec3{1, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten3(v, tt.axis); got != tt.want {
				t.Errorf("Flatten3(%v, %v) = %v, want %v", v, tt.axis, got, tt.want)
			}
		})
	}

	if got := Flatten2(Vec2{1, 2}, Axis2X); got != (Vec2{0, 2}) {
		t.Errorf("Flatten2 X = %v", got)
	}
	if got := Flatten2(Vec2{1, 2}, Axis2Y); got != (Vec2{1, 0}) {
		t.Errorf("Flatten2 Y = %v", got)
	}
}

func TestSign(t *testing.T) {
	if got := (Vec3{-2, 0, 5}).Sign(); got != (Vec3{-1, 0, 1}) {
		t.Errorf("Sign = %v, want (-1 0 1)", got)
	}
}

func TestRotation3(t *testing.T) {
	// Quarter turn about Y maps +X to -Z.
	got := Vec3{1, 0, 0}.Rotated(Up3, math.Pi/2)
	approxV3(t, got, Vec3{0, 0, -1}, "Rotated(+X, Y, pi/2)")

	// RotatedY agrees with the generic rotation.
	v := Vec3{0.3, -1.2, 2.5}
	approxV3(t, v.RotatedY(1.1), v.Rotated(Up3, 1.1), "RotatedY vs Rotated")
}

func TestBasisOrthonormal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		axis := Vec3{rng.Float32() - 0.5, rng.Float32() - 0.5, rng.Float32() - 0.5}.UnitOrZero()
		if axis.LengthSq() == 0 {
			continue
		}
		b := Rotation3(axis, rng.Float32()*6)
		// Columns are unit length and mutually orthogonal.
		for _, c := range []Vec3{b.X, b.Y, b.Z} {
			if !scalar.EqualWithinAbs(float64(c.Length()), 1, tol) {
				t.Fatalf("column %v not unit length", c)
			}
		}
		if !scalar.EqualWithinAbs(float64(b.X.Dot(b.Y)), 0, tol) {
			t.Fatalf("columns X,Y not orthogonal")
		}
		// Inverse composes to identity.
		v := Vec3{1, 2, 3}
		approxV3(t, b.Inverse().MulVec(b.MulVec(v)), v, "inverse roundtrip")
	}
}

func TestAxisAlignedBases(t *testing.T) {
	// Each capsule basis maps the long (Y) axis onto its named axis.
	approxV3(t, Basis3AlongX.MulVec(Up3), Vec3{-1, 0, 0}, "Basis3AlongX")
	approxV3(t, Basis3AlongY.MulVec(Up3), Vec3{0, 1, 0}, "Basis3AlongY")
	approxV3(t, Basis3AlongZ.MulVec(Up3), Vec3{0, 0, 1}, "Basis3AlongZ")

	got := Basis2AlongX.MulVec(Vec2{0, 1})
	if !scalar.EqualWithinAbs(float64(got.X), -1, tol) || !scalar.EqualWithinAbs(float64(got.Y), 0, tol) {
		t.Errorf("Basis2AlongX maps Y to %v, want (-1 0)", got)
	}
}

func TestTransformRoundtrip(t *testing.T) {
	tr := T3(Rotation3(Vec3{0, 0, 1}, 0.7), Vec3{5, -2, 1})
	p := Vec3{1, 2, 3}
	approxV3(t, tr.ApplyInverse(tr.Apply(p)), p, "transform roundtrip")
}

func TestPlane(t *testing.T) {
	pl := NewPlane(Vec3{0, 1, 0}, 2) // y = 2

	if !pl.IsPointOver(Vec3{0, 3, 0}) {
		t.Error("point above plane not reported over")
	}
	if pl.IsPointOver(Vec3{0, 1, 0}) {
		t.Error("point below plane reported over")
	}
	if d := pl.DistanceTo(Vec3{7, 5, 1}); !scalar.EqualWithinAbs(float64(d), 3, tol) {
		t.Errorf("DistanceTo = %v, want 3", d)
	}
	approxV3(t, pl.Project(Vec3{7, 5, 1}), Vec3{7, 2, 1}, "Project")

	// Transforming by a pure translation shifts the plane along its normal.
	moved := pl.Transformed(T3(Basis3Identity, Vec3{0, 4, 0}))
	if d := moved.DistanceTo(Vec3{0, 6, 0}); !scalar.EqualWithinAbs(float64(d), 0, tol) {
		t.Errorf("translated plane distance = %v, want 0", d)
	}

	// Rotating the y=0 plane a quarter turn about Z makes it the x=0 plane.
	rot := NewPlane(Vec3{0, 1, 0}, 0).Transformed(T3(Rotation3(Vec3{0, 0, 1}, math.Pi/2), Vec3{}))
	approxV3(t, rot.Normal, Vec3{-1, 0, 0}, "rotated plane normal")
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"orthogonal", Vec3{1, 0, 0}, Vec3{0, 1, 0}, math.Pi / 2},
		{"parallel", Vec3{1, 0, 0}, Vec3{2, 0, 0}, 0},
		{"opposite", Vec3{1, 0, 0}, Vec3{-1, 0, 0}, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.AngleTo(tt.b); !scalar.EqualWithinAbs(float64(got), tt.want, tol) {
				t.Errorf("AngleTo = %v, want %v", got, tt.want)
			}
		})
	}
}
