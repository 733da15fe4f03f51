package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", a.Cross(b), NewVec3(27, 6, -13)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}

	v := NewVec3(3, 4, 0)
	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(1, 2, -2)
	unit := v.Normalize()

	if math.Abs(unit.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}

	// Direction must be preserved
	if unit.Cross(v).Length() > 1e-12 {
		t.Errorf("Normalize changed direction: %v vs %v", unit, v)
	}

	// Zero vector stays zero rather than producing NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected near-zero vector to report true")
	}
	if NewVec3(1e-7, 0, 0).NearZero() {
		t.Error("Expected non-degenerate vector to report false")
	}
}

func TestVec3_Reflect(t *testing.T) {
	// Reflecting a 45-degree incoming ray off a horizontal surface
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	reflected := v.Reflect(n)

	expected := NewVec3(1, 1, 0)
	if reflected != expected {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestVec3_Reflect_Properties(t *testing.T) {
	// For any v and unit n, reflection preserves length and negates the
	// normal component: reflect(v,n)·n = -(v·n)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v := NewVec3(rng.Float64()*4-2, rng.Float64()*4-2, rng.Float64()*4-2)
		n := NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1).Normalize()
		if n.Length() == 0 {
			continue
		}

		reflected := v.Reflect(n)

		if math.Abs(reflected.Length()-v.Length()) > 1e-9 {
			t.Fatalf("Reflection changed length: %f vs %f", reflected.Length(), v.Length())
		}
		if math.Abs(reflected.Dot(n)+v.Dot(n)) > 1e-9 {
			t.Fatalf("Expected reflect(v,n)·n = -(v·n), got %f vs %f", reflected.Dot(n), -v.Dot(n))
		}
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	tests := []struct {
		t        float64
		expected Point3D
	}{
		{0, NewVec3(1, 2, 3)},
		{1, NewVec3(1, 2, 1)},
		{0.5, NewVec3(1, 2, 2)},
		{-1, NewVec3(1, 2, 5)},
	}

	for _, tt := range tests {
		if got := ray.At(tt.t); got != tt.expected {
			t.Errorf("At(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}
