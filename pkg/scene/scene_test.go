package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestScene_BackgroundColor(t *testing.T) {
	s := NewScene("test", defaultCameraConfig(), SamplingConfig{SamplesPerPixel: 1, MaxDepth: 1})

	tests := []struct {
		name      string
		direction core.Vec3
		want      core.Vec3
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -5, 0), core.NewVec3(1, 1, 1)},
		{"horizon is halfway", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.BackgroundColor(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("BackgroundColor() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewScene_SamplingFromCamera(t *testing.T) {
	s := NewScene("test", defaultCameraConfig(), SamplingConfig{SamplesPerPixel: 5, MaxDepth: 3})

	want := SamplingConfig{Width: 400, Height: 225, SamplesPerPixel: 5, MaxDepth: 3}
	if diff := cmp.Diff(want, s.SamplingConfig); diff != "" {
		t.Errorf("SamplingConfig mismatch (-want +got):\n%s", diff)
	}
	if s.World.Len() != 0 || s.Lights.Len() != 0 {
		t.Errorf("Expected empty scene, got %d shapes and %d lights", s.World.Len(), s.Lights.Len())
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := defaultCameraConfig()

	got := MergeCameraConfig(base, geometry.CameraConfig{Width: 800, VFov: 40})
	want := base
	want.Width = 800
	want.VFov = 40
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeCameraConfig() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(base, MergeCameraConfig(base, geometry.CameraConfig{})); diff != "" {
		t.Errorf("Empty override changed config (-want +got):\n%s", diff)
	}
}

func TestBuiltinScenes(t *testing.T) {
	registry := DefaultRegistry()
	opts := DefaultBuildOptions()

	for _, name := range registry.Names() {
		t.Run(name, func(t *testing.T) {
			s, err := registry.Build(name, opts)
			if err != nil {
				t.Fatalf("Build(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.World.Len() < 2 {
				t.Errorf("Expected ground plus objects, got %d shapes", s.World.Len())
			}
			if s.Lights.Len() == 0 {
				t.Error("Expected at least one light")
			}
			if s.SamplingConfig.SamplesPerPixel != opts.SamplesPerPixel || s.SamplingConfig.MaxDepth != opts.MaxDepth {
				t.Errorf("Sampling config not applied: %+v", s.SamplingConfig)
			}

			// A ray straight down from above the origin lands on the ground or an object
			if _, isHit := s.Hit(core.NewRay(core.NewVec3(0, 50, 0.01), core.NewVec3(0, -1, 0)), 0.001, math.Inf(1)); !isHit {
				t.Error("Expected downward ray to hit the scene")
			}
		})
	}
}

func TestRandomSpheresScene_Deterministic(t *testing.T) {
	opts := DefaultBuildOptions()

	a := NewRandomSpheresScene(opts)
	b := NewRandomSpheresScene(opts)
	if a.World.Len() != b.World.Len() {
		t.Fatalf("Same seed built %d and %d shapes", a.World.Len(), b.World.Len())
	}
	for i := range a.World.Shapes {
		sa, oka := a.World.Shapes[i].(*geometry.Sphere)
		sb, okb := b.World.Shapes[i].(*geometry.Sphere)
		if !oka || !okb {
			t.Fatalf("Shape %d is not a sphere", i)
		}
		if sa.Center != sb.Center || sa.Radius != sb.Radius {
			t.Fatalf("Shape %d differs: %v vs %v", i, sa.Center, sb.Center)
		}
	}

	// ground + at most 22*22 small spheres + 3 large
	if n := a.World.Len(); n < 4 || n > 1+22*22+3 {
		t.Errorf("Unexpected shape count %d", n)
	}

	opts.Seed = 7
	c := NewRandomSpheresScene(opts)
	first := func(s *Scene) core.Vec3 { return s.World.Shapes[1].(*geometry.Sphere).Center }
	if first(a) == first(c) {
		t.Error("Expected different seeds to place spheres differently")
	}
}

func TestRandomCubesScene_PrimitiveCount(t *testing.T) {
	s := NewRandomCubesScene(DefaultBuildOptions())

	cubes := s.World.Len() - 1
	if cubes <= 0 {
		t.Fatal("Expected some cubes")
	}
	if got, want := s.GetPrimitiveCount(), 1+12*cubes; got != want {
		t.Errorf("GetPrimitiveCount() = %d, want %d", got, want)
	}
}

func TestRegistry_UnknownScene(t *testing.T) {
	_, err := DefaultRegistry().Build("no-such-scene", DefaultBuildOptions())
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRegistry_Groups(t *testing.T) {
	r := NewRegistry()
	r.Register(SceneInfo{ID: "b-scene", Group: "Zeta"}, NewCubeScene)
	r.Register(SceneInfo{ID: "a-scene", Group: "Alpha"}, NewCubeScene)
	r.Register(SceneInfo{ID: "c-scene", Group: "Alpha", DisplayName: "Custom"}, NewCubeScene)

	want := []SceneGroup{
		{Name: "Alpha", Scenes: []SceneInfo{
			{ID: "a-scene", DisplayName: "A Scene", Group: "Alpha"},
			{ID: "c-scene", DisplayName: "Custom", Group: "Alpha"},
		}},
		{Name: "Zeta", Scenes: []SceneInfo{
			{ID: "b-scene", DisplayName: "B Scene", Group: "Zeta"},
		}},
	}
	if diff := cmp.Diff(want, r.Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"random-spheres", "Random Spheres"},
		{"glass_sphere", "Glass Sphere"},
		{"UPPER-case", "Upper Case"},
		{"torus", "Torus"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}
