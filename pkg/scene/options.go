package scene

import (
	"math/rand"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/lights"
)

// BuildOptions carries the settings a scene builder needs
type BuildOptions struct {
	Seed            int64                 // Seed for randomized scene content
	SamplesPerPixel int                   // Number of rays per pixel
	MaxDepth        int                   // Maximum ray bounce depth
	Camera          geometry.CameraConfig // Overrides; zero fields keep the builder's defaults
	Tolerances      geometry.Tolerances   // Triangle tolerances for cubes
	March           geometry.MarchConfig  // Ray-march settings for tori
	Shading         lights.ShadingConfig  // Light shading constants
}

// DefaultBuildOptions returns the options used when none are given
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Seed:            42,
		SamplesPerPixel: 10,
		MaxDepth:        12,
		Tolerances:      geometry.DefaultTolerances(),
		March:           geometry.DefaultMarchConfig(),
		Shading:         lights.DefaultShadingConfig(),
	}
}

// defaultCameraConfig is the camera shared by the built-in scenes
func defaultCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override geometry.CameraConfig) geometry.CameraConfig {
	result := base
	var zero core.Vec3
	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	if override.Aperture > 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance > 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// newScene applies the build options to a builder's camera and creates the scene
func (o BuildOptions) newScene(name string, camera geometry.CameraConfig) *Scene {
	return NewScene(name, MergeCameraConfig(camera, o.Camera), SamplingConfig{
		SamplesPerPixel: o.SamplesPerPixel,
		MaxDepth:        o.MaxDepth,
	})
}

// random returns the deterministic generator for scene content
func (o BuildOptions) random() *rand.Rand {
	return rand.New(rand.NewSource(o.Seed))
}

// randomColor returns a color with components uniform in [lo, hi)
func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
	)
}

// randomRange returns a value uniform in [lo, hi)
func randomRange(random *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*random.Float64()
}
