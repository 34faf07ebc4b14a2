package scene

import (
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/lights"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// A scene is read-only once built and may be shared by render workers.
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	World          *geometry.ShapeList // Objects in the scene
	Lights         *lights.LightList   // Lights in the scene
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
	Background     Background
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Background is the vertical gradient returned for rays that miss everything
type Background struct {
	Top    core.Vec3 // Color straight up
	Bottom core.Vec3 // Color straight down
}

// DefaultBackground returns the white to sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// NewScene creates an empty scene with the given camera and sampling settings
func NewScene(name string, cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	samplingConfig.Width = cameraConfig.Width
	samplingConfig.Height = cameraConfig.ImageHeight()
	return &Scene{
		Name:           name,
		Camera:         geometry.NewCamera(cameraConfig),
		World:          geometry.NewShapeList(),
		Lights:         lights.NewLightList(),
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
		Background:     DefaultBackground(),
	}
}

// Hit returns the nearest intersection of ray with the scene's objects
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.World.Hit(ray, tMin, tMax)
}

// BackgroundColor blends the background gradient by the ray's vertical direction
func (s *Scene) BackgroundColor(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.Background.Bottom.Multiply(1.0 - t).Add(s.Background.Top.Multiply(t))
}

// AddShapes appends shapes to the scene
func (s *Scene) AddShapes(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		s.World.Add(shape)
	}
}

// AddLights appends lights to the scene
func (s *Scene) AddLights(ls ...lights.Light) {
	for _, light := range ls {
		s.Lights.Add(light)
	}
}

// GetPrimitiveCount returns the number of primitives, counting each cube as its triangles
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.World.Shapes {
		switch obj := shape.(type) {
		case *geometry.Cube:
			count += len(obj.Faces())
		default:
			count++
		}
	}
	return count
}
