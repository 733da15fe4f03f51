package material

import (
	"math/rand"

	"github.com/mgraves/go-sphere-tracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Color // Metal color
	Fuzz   float64    // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzz to [0,1]
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	// Calculate the perfect reflection direction
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	// Perturb the reflection direction to simulate roughness
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Multiply(m.Fuzz))
	}

	scattered := core.Ray{Origin: hit.Point, Direction: reflected}

	// Rays scattered below the surface are absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
