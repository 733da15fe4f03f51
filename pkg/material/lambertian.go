package material

import (
	"math/rand"

	"github.com/mgraves/go-sphere-tracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Color // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	// Bounce into a random direction biased around the surface normal
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(rng))

	// The random vector can cancel the normal almost exactly; fall back
	// to the normal to avoid a degenerate zero-length direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered := core.Ray{Origin: hit.Point, Direction: scatterDirection}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}
