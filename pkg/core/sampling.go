package core

import "math/rand"

// RandomInUnitSphere generates a random point inside the unit sphere by
// rejection sampling: each component uniform on [-1,1), accepted when the
// squared length is below 1.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*rng.Float64() - 1,
			Y: 2*rng.Float64() - 1,
			Z: 2*rng.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit sphere
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}
