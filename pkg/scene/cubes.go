package scene

import (
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/lights"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// NewCubeScene creates a single diffuse cube above the ground
func NewCubeScene(opts BuildOptions) *Scene {
	s := opts.newScene("cube", defaultCameraConfig())
	random := opts.random()

	albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
	s.AddShapes(
		groundSphere(),
		geometry.NewCubeWithTolerances(core.NewVec3(0, 0.75, 1), 1.5, 1.5, 1.5, 0, 0, 0,
			material.NewLambertian(albedo), opts.Tolerances),
	)
	s.AddLights(lights.NewPointLightWithShading(randomColor(random, 0, 1), core.NewVec3(-20, 8, 3), opts.Shading))
	return s
}

// NewRandomCubesScene creates a grid of small cubes with random materials,
// each rotated up to 30 degrees about every axis
func NewRandomCubesScene(opts BuildOptions) *Scene {
	s := opts.newScene("random-cubes", defaultCameraConfig())
	random := opts.random()

	s.AddShapes(groundSphere())

	for a := -3; a < 5; a++ {
		for b := -1; b < 3; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			angleX := randomRange(random, -30, 30)
			angleY := randomRange(random, -30, 30)
			angleZ := randomRange(random, -30, 30)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 1.0 {
				continue
			}

			var cubeMaterial material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				cubeMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor(random, 0.5, 1)
				fuzz := randomRange(random, 0, 0.5)
				cubeMaterial = material.NewMetal(albedo, fuzz)
			default:
				cubeMaterial = material.NewDielectric(1.5)
			}
			s.AddShapes(geometry.NewCubeWithTolerances(center, 0.4, 0.4, 0.4, angleX, angleY, angleZ, cubeMaterial, opts.Tolerances))
		}
	}

	s.AddLights(lights.NewPointLightWithShading(core.NewVec3(1, 1, 1), core.NewVec3(-20, 8, 3), opts.Shading))
	return s
}
