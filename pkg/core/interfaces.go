package core

import "math/rand"

// Material scatters an incoming ray at a surface hit. The returned bool is
// false when the ray is absorbed; absorbed rays contribute black.
//
// The set of materials is closed: Lambertian, Metal and Dielectric in
// pkg/material. Nothing loads materials dynamically.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, rng *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray   // The scattered ray
	Attenuation Color // Per-channel reflectance applied to the scattered color
}

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Point3D  // Point of intersection
	Normal    Vec3     // Surface normal at intersection, always opposing the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The stored normal always points against the incident ray direction.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
