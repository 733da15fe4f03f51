package scene

import (
	"github.com/mgraves/go-sphere-tracer/pkg/core"
	"github.com/mgraves/go-sphere-tracer/pkg/geometry"
	"github.com/mgraves/go-sphere-tracer/pkg/material"
)

// NewDefaultScene creates the demo scene: a large yellow-green ground sphere,
// a blue diffuse sphere in the center, glass on the left and fuzzy gold
// metal on the right.
func NewDefaultScene() *Scene {
	materialGround := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(3.0)
	materialRight := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 1.0)

	world := World{
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.0), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, materialRight),
		geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, materialGround),
	}

	return &Scene{World: world}
}
