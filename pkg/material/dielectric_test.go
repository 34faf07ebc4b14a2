package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-shadow-raytracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	result, scattered := glass.Scatter(ray, hit, sampler)
	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}

	hasRefraction := false
	for seed := int64(0); seed < 1000 && !hasRefraction; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, _ := glass.Scatter(ray, hit, sampler)

		// Refraction bends toward the normal, so the ray gets steeper
		if result.Scattered.Direction.Normalize().Y < -0.75 {
			hasRefraction = true
		}
	}
	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
}

func TestDielectric_IndexOneDoesNotBend(t *testing.T) {
	air := NewDielectric(1.0)

	tests := []struct {
		name     string
		incoming core.Vec3
	}{
		{"steep", core.NewVec3(0.3, -1, 0.2)},
		{"grazing", core.NewVec3(1, -0.2, 0)},
		{"nearly tangent", core.NewVec3(1, -0.01, 0.3)},
	}

	for _, tt := range tests {
		for _, frontFace := range []bool{true, false} {
			hit := HitRecord{
				Point:     core.NewVec3(0, 0, 0),
				Normal:    core.NewVec3(0, 1, 0),
				FrontFace: frontFace,
			}
			ray := core.NewRay(tt.incoming.Negate(), tt.incoming)
			want := tt.incoming.Normalize()

			sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
			for i := 0; i < 1000; i++ {
				result, scattered := air.Scatter(ray, hit, sampler)
				if !scattered {
					t.Fatalf("%s: dielectric should always scatter", tt.name)
				}

				got := result.Scattered.Direction.Normalize()
				if got.Cross(want).Length() > 1e-9 || got.Dot(want) <= 0 {
					t.Fatalf("%s frontFace=%t draw %d: expected direction collinear with %v, got %v",
						tt.name, frontFace, i, want, got)
				}
			}
		}
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -0.1, 0).Normalize() // very shallow angle
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)

	// Exiting the material
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: false,
		Material:  glass,
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	if 1.5*sinTheta <= 1.0 {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	for i := 0; i < 10; i++ {
		// a draw of 0.999 would always refract if refraction were possible
		sampler := fixedSampler{value1D: 0.999}
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Error("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Y <= 0 {
			t.Errorf("Expected total internal reflection (ray going up), got %+v", result.Scattered.Direction)
		}
		if math.Abs(result.Scattered.Direction.X-rayDirection.X) > 1e-10 {
			t.Errorf("Expected X component %.6f, got %.6f", rayDirection.X, result.Scattered.Direction.X)
		}
	}
}

func TestReflectanceFunction(t *testing.T) {
	// Normal incidence (0°) - should be low for air->glass
	r0 := Reflectance(1.0, 1.0/1.5)
	if r0 < 0.03 || r0 > 0.06 {
		t.Errorf("Normal incidence reflectance = %.3f, expected ~0.04", r0)
	}

	// Grazing incidence (90°) - should be close to 1
	r90 := Reflectance(0.0, 1.0/1.5)
	if r90 < 0.95 {
		t.Errorf("Grazing incidence reflectance = %.3f, expected close to 1.0", r90)
	}

	r45 := Reflectance(0.707, 1.0/1.5)
	if r45 <= r0 || r90 <= r45 {
		t.Errorf("Reflectance should increase with angle: R(0°)=%.3f, R(45°)=%.3f, R(90°)=%.3f", r0, r45, r90)
	}
}

func TestDielectric_NoDirectColor(t *testing.T) {
	if _, ok := NewDielectric(1.5).Color(); ok {
		t.Error("Dielectric should not report a direct shading color")
	}
}
