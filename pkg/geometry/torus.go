package geometry

import (
	"math"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// MarchConfig bounds the sphere tracing used for implicit surfaces
type MarchConfig struct {
	TMin     float64 `json:"tMin"`     // Hits closer than this along the ray are rejected
	Epsilon  float64 `json:"epsilon"`  // Step size (in ray parameter units) accepted as a hit
	MaxSteps int     `json:"maxSteps"` // Steps taken before giving up
}

// DefaultMarchConfig returns the march settings used when none are given
func DefaultMarchConfig() MarchConfig {
	return MarchConfig{
		TMin:     0.01,
		Epsilon:  0.02,
		MaxSteps: 10,
	}
}

// Torus is a ring around Center in the plane perpendicular to Normal.
// MajorRadius is the ring radius, MinorRadius the tube radius.
type Torus struct {
	Center      core.Vec3
	Normal      core.Vec3 // Unit normal of the ring's plane
	MajorRadius float64
	MinorRadius float64
	Material    material.Material
	Marching    MarchConfig
}

// NewTorus creates a new torus with the default march settings
func NewTorus(center, normal core.Vec3, majorRadius, minorRadius float64, material material.Material) *Torus {
	return NewTorusWithMarch(center, normal, majorRadius, minorRadius, material, DefaultMarchConfig())
}

// NewTorusWithMarch creates a new torus with custom march settings
func NewTorusWithMarch(center, normal core.Vec3, majorRadius, minorRadius float64, material material.Material, march MarchConfig) *Torus {
	return &Torus{
		Center:      center,
		Normal:      normal.Normalize(),
		MajorRadius: majorRadius,
		MinorRadius: minorRadius,
		Material:    material,
		Marching:    march,
	}
}

// Hit tests if a ray intersects with the torus
func (t *Torus) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, _, ok := t.March(ray, tMin, tMax)
	return hit, ok
}

// March sphere-traces the ray toward the tube surface. It returns the hit,
// the number of steps left when the march converged, and whether it hit.
// T in the hit record is measured along the original ray.
func (t *Torus) March(ray core.Ray, tMin, tMax float64) (*material.HitRecord, int, bool) {
	directionLength := ray.Direction.Length()
	if directionLength == 0 {
		return nil, 0, false
	}
	tMin = math.Max(tMin, t.Marching.TMin)

	total := 0.0
	for steps := t.Marching.MaxSteps; ; steps-- {
		point := ray.At(total)
		_, dist := t.nearestRingPoint(point)
		step := (dist - t.MinorRadius) / directionLength

		if step <= t.Marching.Epsilon {
			total += step
			if total <= tMin || total >= tMax {
				return nil, steps, false
			}
			return t.hitRecord(ray, total), steps, true
		}
		if steps == 0 {
			return nil, 0, false
		}

		total += step
		if total >= tMax {
			return nil, steps, false
		}
	}
}

// hitRecord builds the record for a converged march at parameter root
func (t *Torus) hitRecord(ray core.Ray, root float64) *material.HitRecord {
	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: t.Material,
	}
	ringPoint, _ := t.nearestRingPoint(hitRecord.Point)
	outwardNormal := hitRecord.Point.Subtract(ringPoint).Normalize()
	hitRecord.SetFaceNormal(ray, outwardNormal)
	return hitRecord
}

// nearestRingPoint returns the point on the central circle closest to p and its distance
func (t *Torus) nearestRingPoint(p core.Vec3) (core.Vec3, float64) {
	// Project p onto the ring's plane
	k := p.Subtract(t.Center).Dot(t.Normal)
	projected := p.Subtract(t.Normal.Multiply(k))

	radial := projected.Subtract(t.Center)
	if radial.NearZero() {
		// On the axis every ring point is equally close; pick any
		radial = t.anyPerpendicular()
	}
	ringPoint := t.Center.Add(radial.Normalize().Multiply(t.MajorRadius))
	return ringPoint, ringPoint.Subtract(p).Length()
}

// anyPerpendicular returns a vector perpendicular to the ring normal
func (t *Torus) anyPerpendicular() core.Vec3 {
	var nt core.Vec3
	if math.Abs(t.Normal.X) > 0.1 {
		nt = core.NewVec3(0, 1, 0)
	} else {
		nt = core.NewVec3(1, 0, 0)
	}
	return nt.Cross(t.Normal)
}
