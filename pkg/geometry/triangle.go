package geometry

import (
	"math"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// Tolerances controls the numerical checks of the triangle hit test
type Tolerances struct {
	// Parallel rejects rays whose unit direction has |dot(dir, normal)| below it.
	Parallel float64 `json:"parallel"`
	// Barycentric is the allowed deviation of the area-ratio weight sum from 1.
	Barycentric float64 `json:"barycentric"`
}

// DefaultTolerances returns the tolerances used when none are given
func DefaultTolerances() Tolerances {
	return Tolerances{
		Parallel:    0.01,
		Barycentric: 0.01,
	}
}

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	A, B, C    core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	Tolerances Tolerances
	normal     core.Vec3 // Cached unit normal, cross(B-A, C-A)
	area       float64   // Cached area
}

// NewTriangle creates a new triangle with default tolerances
func NewTriangle(a, b, c core.Vec3, material material.Material) *Triangle {
	return NewTriangleWithTolerances(a, b, c, material, DefaultTolerances())
}

// NewTriangleWithTolerances creates a new triangle with custom tolerances
func NewTriangleWithTolerances(a, b, c core.Vec3, material material.Material, tolerances Tolerances) *Triangle {
	t := makeTriangle(a, b, c, material, tolerances)
	return &t
}

func makeTriangle(a, b, c core.Vec3, material material.Material, tolerances Tolerances) Triangle {
	perp := b.Subtract(a).Cross(c.Subtract(a))
	return Triangle{
		A:          a,
		B:          b,
		C:          c,
		Material:   material,
		Tolerances: tolerances,
		normal:     perp.Normalize(),
		area:       0.5 * perp.Length(),
	}
}

// Hit tests the ray against the triangle's plane, then checks that the
// plane hit point lies inside the triangle.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hitRecord, ok := t.hitPlane(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	if !t.contains(hitRecord.Point) {
		return nil, false
	}
	return hitRecord, true
}

// hitPlane intersects the ray with the triangle's supporting plane
func (t *Triangle) hitPlane(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	directionLength := ray.Direction.Length()
	if directionLength == 0 {
		return nil, false
	}
	unitDirection := ray.Direction.Multiply(1.0 / directionLength)

	// A degenerate triangle has a zero normal and is treated as parallel
	b := unitDirection.Dot(t.normal)
	if math.Abs(b) < t.Tolerances.Parallel {
		return nil, false
	}

	// k is the distance along the unit direction
	k := t.A.Subtract(ray.Origin).Dot(t.normal) / b
	root := k / directionLength
	if root <= tMin || root >= tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.Origin.Add(unitDirection.Multiply(k)),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)
	return hitRecord, true
}

// contains reports whether p, a point on the plane, lies inside the triangle.
// Points outside have sub-triangle areas summing to more than the whole, so
// the check is approximate within the barycentric tolerance near the edges.
func (t *Triangle) contains(p core.Vec3) bool {
	alpha, beta, gamma := t.BarycentricWeights(p)
	return math.Abs(alpha+beta+gamma-1.0) <= t.Tolerances.Barycentric
}

// BarycentricWeights returns the sub-triangle area ratios of p opposite A, B and C
func (t *Triangle) BarycentricWeights(p core.Vec3) (alpha, beta, gamma float64) {
	if t.area == 0 {
		return math.Inf(1), math.Inf(1), math.Inf(1)
	}
	pa := t.A.Subtract(p)
	pb := t.B.Subtract(p)
	pc := t.C.Subtract(p)

	areaA := 0.5 * pb.Cross(pc).Length()
	areaB := 0.5 * pa.Cross(pc).Length()
	areaC := 0.5 * pa.Cross(pb).Length()

	return areaA / t.area, areaB / t.area, areaC / t.area
}

// Normal returns the triangle's unit outward normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Centroid returns the average of the three vertices
func (t *Triangle) Centroid() core.Vec3 {
	return t.A.Add(t.B).Add(t.C).Multiply(1.0 / 3.0)
}
