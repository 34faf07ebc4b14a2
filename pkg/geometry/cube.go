package geometry

import (
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/material"
)

// Cube represents a rotated box made up of 12 triangles, two per face
type Cube struct {
	Center   core.Vec3         // Center point of the cube
	Size     core.Vec3         // Full width, height and depth
	Rotation core.Vec3         // Euler angles in degrees (X, Y, Z), applied in that order
	Material material.Material // Material for all faces
	faces    [12]Triangle
}

// NewCube creates a cube with default triangle tolerances.
// Angles are in degrees around the X, Y and Z axes.
func NewCube(center core.Vec3, width, height, depth, angleX, angleY, angleZ float64, material material.Material) *Cube {
	return NewCubeWithTolerances(center, width, height, depth, angleX, angleY, angleZ, material, DefaultTolerances())
}

// NewCubeWithTolerances creates a cube whose triangles use the given tolerances
func NewCubeWithTolerances(center core.Vec3, width, height, depth, angleX, angleY, angleZ float64, material material.Material, tolerances Tolerances) *Cube {
	cube := &Cube{
		Center:   center,
		Size:     core.NewVec3(width, height, depth),
		Rotation: core.NewVec3(angleX, angleY, angleZ),
		Material: material,
	}
	cube.generateFaces(tolerances)
	return cube
}

// generateFaces creates the 12 triangles of the cube
func (c *Cube) generateFaces(tolerances Tolerances) {
	hw, hh, hd := c.Size.X/2, c.Size.Y/2, c.Size.Z/2

	// a-d: top face (Y+), e-h: bottom face (Y-), same X/Z layout
	corners := [8]core.Vec3{
		core.NewVec3(-hw, hh, -hd),  // a
		core.NewVec3(-hw, hh, hd),   // b
		core.NewVec3(hw, hh, hd),    // c
		core.NewVec3(hw, hh, -hd),   // d
		core.NewVec3(-hw, -hh, -hd), // e
		core.NewVec3(-hw, -hh, hd),  // f
		core.NewVec3(hw, -hh, hd),   // g
		core.NewVec3(hw, -hh, -hd),  // h
	}

	radians := core.NewVec3(
		core.DegreesToRadians(c.Rotation.X),
		core.DegreesToRadians(c.Rotation.Y),
		core.DegreesToRadians(c.Rotation.Z),
	)
	for i := range corners {
		corners[i] = corners[i].Rotate(radians).Add(c.Center)
	}
	a, b, cc, d := corners[0], corners[1], corners[2], corners[3]
	e, f, g, h := corners[4], corners[5], corners[6], corners[7]

	// Each triple winds counter-clockwise seen from outside
	windings := [12][3]core.Vec3{
		{a, b, d}, {b, cc, d}, // top (Y+)
		{e, h, f}, {f, h, g}, // bottom (Y-)
		{a, e, b}, {b, e, f}, // left (X-)
		{cc, h, d}, {cc, g, h}, // right (X+)
		{b, g, cc}, {b, f, g}, // front (Z+)
		{a, d, e}, {d, h, e}, // back (Z-)
	}
	for i, w := range windings {
		c.faces[i] = makeTriangle(w[0], w[1], w[2], c.Material, tolerances)
	}
}

// Hit tests the ray against all 12 triangles and keeps the closest hit
func (c *Cube) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestT := tMax

	for i := range c.faces {
		if hit, isHit := c.faces[i].Hit(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Faces returns the cube's triangles
func (c *Cube) Faces() []Triangle {
	return c.faces[:]
}
