package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(rng)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v outside unit sphere (len²=%f)", p, p.LengthSquared())
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(rng)
		if math.Abs(v.Length()-1.0) > 1e-12 {
			t.Fatalf("Expected unit length, got %f for %v", v.Length(), v)
		}
	}
}

func TestRandomUnitVector_CoversAllOctants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var octants [8]int
	for i := 0; i < 4000; i++ {
		v := RandomUnitVector(rng)
		idx := 0
		if v.X > 0 {
			idx |= 1
		}
		if v.Y > 0 {
			idx |= 2
		}
		if v.Z > 0 {
			idx |= 4
		}
		octants[idx]++
	}

	// A heavily biased sampler would leave octants empty
	for i, count := range octants {
		if count == 0 {
			t.Errorf("Octant %d never sampled", i)
		}
	}
}
