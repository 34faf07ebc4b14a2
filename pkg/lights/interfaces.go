package lights

import (
	"math"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// Light computes the direct contribution of a light source at a surface hit
type Light interface {
	// DirectIllumination casts a shadow ray against world and returns whether
	// the hit point is lit and the light's color contribution. A shadowed
	// point returns (false, black).
	DirectIllumination(world geometry.Shape, rayIn core.Ray, hit *material.HitRecord) (bool, core.Vec3)
}

// ShadingConfig holds the Blinn-Phong and shadow-ray constants
type ShadingConfig struct {
	KDiffuse   float64 `json:"kDiffuse"`   // Diffuse coefficient
	KSpecular  float64 `json:"kSpecular"`  // Specular coefficient
	Shininess  float64 `json:"shininess"`  // Specular exponent
	ShadowTMin float64 `json:"shadowTMin"` // Self-intersection offset for shadow rays
}

// DefaultShadingConfig returns the shading constants used when none are given
func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{
		KDiffuse:   0.8,
		KSpecular:  0.8,
		Shininess:  10.0,
		ShadowTMin: 0.001,
	}
}

// occluded reports whether anything in world lies along direction from point
func occluded(world geometry.Shape, point, direction core.Vec3, tMin float64) bool {
	shadowRay := core.NewRay(point, direction)
	_, isHit := world.Hit(shadowRay, tMin, math.Inf(1))
	return isHit
}
