package integrator

import (
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray, bouncing at most depth times
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3
}

// Config holds the integrator's tuning constants
type Config struct {
	// LitContribution scales indirect light at points reached by any light
	LitContribution float64 `json:"litContribution"`
	// ShadowedContribution scales indirect light at points in full shadow
	ShadowedContribution float64 `json:"shadowedContribution"`
	// HitTMin is the self-intersection offset for scene rays
	HitTMin float64 `json:"hitTMin"`
}

// DefaultConfig returns the integrator constants used when none are given
func DefaultConfig() Config {
	return Config{
		LitContribution:      1.0,
		ShadowedContribution: 0.4,
		HitTMin:              0.001,
	}
}
