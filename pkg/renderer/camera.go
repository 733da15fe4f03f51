package renderer

import (
	"github.com/mgraves/go-sphere-tracer/pkg/core"
)

// Camera generates primary rays from normalized pixel coordinates. It looks
// down the negative Z axis through an axis-aligned viewport.
type Camera struct {
	origin          core.Point3D
	lowerLeftCorner core.Point3D
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera at origin with the given viewport dimensions
// and focal length. The viewport spans are derived once here.
func NewCamera(origin core.Point3D, viewportHeight, viewportWidth, focalLength float64) *Camera {
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1.
// The direction is deliberately not normalized.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
