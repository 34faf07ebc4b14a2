package scene

import (
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/lights"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// groundSphere is the huge sphere the built-in scenes stand on
func groundSphere() *geometry.Sphere {
	return geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
}

// NewRandomSpheresScene creates a 22x22 grid of jittered small spheres around
// three large ones, lit by a single randomly colored point light
func NewRandomSpheresScene(opts BuildOptions) *Scene {
	s := opts.newScene("random-spheres", defaultCameraConfig())
	random := opts.random()

	s.AddShapes(groundSphere())

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var sphereMaterial material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor(random, 0.5, 1)
				fuzz := randomRange(random, 0, 0.5)
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}
			s.AddShapes(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	s.AddShapes(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	s.AddLights(lights.NewPointLightWithShading(randomColor(random, 0, 1), core.NewVec3(-20, 8, 3), opts.Shading))
	return s
}

// NewGlassSphereScene creates a single glass sphere resting above the ground
func NewGlassSphereScene(opts BuildOptions) *Scene {
	s := opts.newScene("glass-sphere", defaultCameraConfig())
	random := opts.random()

	s.AddShapes(
		groundSphere(),
		geometry.NewSphere(core.NewVec3(0, 0.75, 1), 0.7, material.NewDielectric(1.5)),
	)
	s.AddLights(lights.NewPointLightWithShading(randomColor(random, 0, 1), core.NewVec3(-20, 8, 3), opts.Shading))
	return s
}
