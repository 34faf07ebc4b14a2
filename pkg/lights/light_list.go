package lights

import (
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// LightList aggregates lights. It is itself a Light.
type LightList struct {
	Lights []Light
}

// NewLightList creates a light list from the given lights
func NewLightList(lights ...Light) *LightList {
	return &LightList{Lights: lights}
}

// Add appends a light to the list
func (ll *LightList) Add(light Light) {
	ll.Lights = append(ll.Lights, light)
}

// Len returns the number of lights in the list
func (ll *LightList) Len() int {
	return len(ll.Lights)
}

// DirectIllumination sums the contributions of every unshadowed light.
// The point is lit if any member light reaches it.
func (ll *LightList) DirectIllumination(world geometry.Shape, rayIn core.Ray, hit *material.HitRecord) (bool, core.Vec3) {
	isLit := false
	var total core.Vec3
	for _, light := range ll.Lights {
		if lit, color := light.DirectIllumination(world, rayIn, hit); lit {
			isLit = true
			total = total.Add(color)
		}
	}
	return isLit, total
}
