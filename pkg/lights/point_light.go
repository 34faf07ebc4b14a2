package lights

import (
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// PointLight is an infinitesimal light at Position.
// It has no shading model: a visible point receives the flat light color.
type PointLight struct {
	Color    core.Vec3
	Position core.Vec3
	Shading  ShadingConfig
}

// NewPointLight creates a point light with default shading constants
func NewPointLight(color, position core.Vec3) *PointLight {
	return NewPointLightWithShading(color, position, DefaultShadingConfig())
}

// NewPointLightWithShading creates a point light with custom shading constants.
// Only the shadow-ray offset applies to point lights.
func NewPointLightWithShading(color, position core.Vec3, shading ShadingConfig) *PointLight {
	return &PointLight{
		Color:    color,
		Position: position,
		Shading:  shading,
	}
}

// LightVector returns the unit vector from point toward the light
func (pl *PointLight) LightVector(point core.Vec3) core.Vec3 {
	return pl.Position.Subtract(point).Normalize()
}

// DirectIllumination implements the Light interface
func (pl *PointLight) DirectIllumination(world geometry.Shape, rayIn core.Ray, hit *material.HitRecord) (bool, core.Vec3) {
	// The shadow ray is unbounded, so occluders beyond the light also shadow
	if occluded(world, hit.Point, pl.LightVector(hit.Point), pl.Shading.ShadowTMin) {
		return false, core.Vec3{}
	}
	return true, pl.Color
}
