package integrator

import (
	"math"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/scene"
)

// ShadowTracingIntegrator combines direct light from the scene's light list
// with recursively traced scattered light. Indirect light at points in full
// shadow is dampened.
type ShadowTracingIntegrator struct {
	config Config
}

// NewShadowTracingIntegrator creates a new shadow tracing integrator
func NewShadowTracingIntegrator(config Config) *ShadowTracingIntegrator {
	return &ShadowTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray
func (st *ShadowTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scene.Hit(ray, st.config.HitTMin, math.Inf(1))
	if !isHit {
		return scene.BackgroundColor(ray)
	}

	isLit, localColor := scene.Lights.DirectIllumination(scene.World, ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Absorbed: only the direct term remains
		return localColor
	}

	factor := st.config.ShadowedContribution
	if isLit {
		factor = st.config.LitContribution
	}

	indirect := st.RayColor(scatter.Scattered, scene, sampler, depth-1)
	return localColor.Add(scatter.Attenuation.MultiplyVec(indirect).Multiply(factor))
}
