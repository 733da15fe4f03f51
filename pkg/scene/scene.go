package scene

import (
	"github.com/mgraves/go-sphere-tracer/pkg/core"
)

// World is an ordered list of hittable objects. Ordering does not affect
// the rendered image, only the iteration order of the closest-hit scan.
type World []core.Hittable

// ClosestHit finds the nearest intersection along the ray within (tMin, tMax)
func (w World) ClosestHit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range w {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// Scene contains all the elements needed for rendering
type Scene struct {
	World World
}
