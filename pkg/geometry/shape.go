package geometry

import (
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit returns the shape's own nearest intersection in (tMin, tMax).
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
