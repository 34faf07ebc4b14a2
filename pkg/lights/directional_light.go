package lights

import (
	"math"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// DirectionalLight is a light at infinity whose rays travel along Direction.
// Visible points are shaded with Blinn-Phong.
type DirectionalLight struct {
	Color     core.Vec3
	Direction core.Vec3
	Shading   ShadingConfig
}

// NewDirectionalLight creates a directional light with default shading constants
func NewDirectionalLight(color, direction core.Vec3) *DirectionalLight {
	return NewDirectionalLightWithShading(color, direction, DefaultShadingConfig())
}

// NewDirectionalLightWithShading creates a directional light with custom shading constants
func NewDirectionalLightWithShading(color, direction core.Vec3, shading ShadingConfig) *DirectionalLight {
	return &DirectionalLight{
		Color:     color,
		Direction: direction,
		Shading:   shading,
	}
}

// LightVector returns the unit vector from a surface toward the light
func (dl *DirectionalLight) LightVector() core.Vec3 {
	return dl.Direction.Negate().Normalize()
}

// DirectIllumination implements the Light interface
func (dl *DirectionalLight) DirectIllumination(world geometry.Shape, rayIn core.Ray, hit *material.HitRecord) (bool, core.Vec3) {
	lightVec := dl.LightVector()
	if occluded(world, hit.Point, lightVec, dl.Shading.ShadowTMin) {
		return false, core.Vec3{}
	}
	return true, dl.shade(rayIn, hit, lightVec)
}

// shade evaluates the Blinn-Phong diffuse and specular terms
func (dl *DirectionalLight) shade(rayIn core.Ray, hit *material.HitRecord, lightVec core.Vec3) core.Vec3 {
	normal := hit.Normal.Normalize()
	lambertian := math.Max(normal.Dot(lightVec), 0.0)

	var diffuse core.Vec3
	if hit.Material != nil {
		if albedo, ok := hit.Material.Color(); ok {
			diffuse = dl.Color.MultiplyVec(albedo).Multiply(dl.Shading.KDiffuse * lambertian)
		}
	}

	// No highlight on surfaces facing away from the light
	specAmount := 0.0
	if lambertian > 0 {
		viewVec := rayIn.Origin.Subtract(hit.Point).Normalize()
		halfVec := lightVec.Add(viewVec).Multiply(0.5)
		specAmount = math.Pow(math.Max(0.0, normal.Dot(halfVec)), dl.Shading.Shininess)
	}
	specular := dl.Color.Multiply(dl.Shading.KSpecular * specAmount)

	return diffuse.Add(specular)
}
