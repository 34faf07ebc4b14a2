package scene

import (
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/lights"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// NewTorusScene creates a tilted metal torus around a diffuse sphere
func NewTorusScene(opts BuildOptions) *Scene {
	s := opts.newScene("torus", defaultCameraConfig())

	s.AddShapes(
		groundSphere(),
		geometry.NewTorusWithMarch(
			core.NewVec3(0, 1, 0),
			core.NewVec3(1, 3, 0.5),
			1.2, 0.3,
			material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1),
			opts.March,
		),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
	)
	s.AddLights(lights.NewPointLightWithShading(core.NewVec3(1, 1, 1), core.NewVec3(-20, 8, 3), opts.Shading))
	return s
}

// NewSunsetScene mixes a low directional sun with a point light, so both the
// flat point-light term and Blinn-Phong highlights show up
func NewSunsetScene(opts BuildOptions) *Scene {
	camera := defaultCameraConfig()
	camera.Aperture = 0
	s := opts.newScene("sunset", camera)
	s.Background = Background{
		Top:    core.NewVec3(0.3, 0.4, 0.8),
		Bottom: core.NewVec3(1.0, 0.6, 0.3),
	}

	s.AddShapes(
		groundSphere(),
		geometry.NewSphere(core.NewVec3(-2, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(2, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.05)),
		geometry.NewCubeWithTolerances(core.NewVec3(0, 0.5, 2), 1, 1, 1, 0, 35, 0,
			material.NewLambertian(core.NewVec3(0.2, 0.6, 0.3)), opts.Tolerances),
		geometry.NewSphere(core.NewVec3(0, 0.6, -2), 0.6, material.NewDielectric(1.5)),
	)
	s.AddLights(
		lights.NewDirectionalLightWithShading(core.NewVec3(1.0, 0.7, 0.4), core.NewVec3(-1, -0.3, -0.2), opts.Shading),
		lights.NewPointLightWithShading(core.NewVec3(0.2, 0.2, 0.3), core.NewVec3(5, 10, 5), opts.Shading),
	)
	return s
}
