package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-shadow-raytracer/pkg/config"
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/renderer"
	"github.com/df07/go-shadow-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"random spheres", "random-spheres", false},
		{"glass sphere", "glass-sphere", false},
		{"cube", "cube", false},
		{"random cubes", "random-cubes", false},
		{"torus", "torus", false},
		{"sunset", "sunset", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := config.Default()
			opts.Scene = tt.sceneType
			s, err := createScene(opts)

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for scene type '%s', got %v", tt.sceneType, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}

			// Verify scene has required properties
			if s.CameraConfig.Width != opts.Width {
				t.Errorf("Scene camera width should be %d, got %d", opts.Width, s.CameraConfig.Width)
			}
			if s.SamplingConfig.SamplesPerPixel != opts.SamplesPerPixel {
				t.Errorf("Scene samples per pixel should be %d, got %d", opts.SamplesPerPixel, s.SamplingConfig.SamplesPerPixel)
			}
			if s.World.Len() == 0 {
				t.Error("Scene should contain shapes")
			}
		})
	}
}

func TestWriteImage(t *testing.T) {
	pixels := make([][]renderer.PixelStats, 2)
	for y := range pixels {
		pixels[y] = make([]renderer.PixelStats, 3)
		for x := range pixels[y] {
			pixels[y][x].AddSample(core.NewVec3(0.5, 0.5, 0.5))
		}
	}

	dir := t.TempDir()

	ppmPath := filepath.Join(dir, "nested", "out.ppm")
	if err := writeImage(ppmPath, pixels); err != nil {
		t.Fatalf("writeImage(ppm) failed: %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n3 2\n255\n") {
		t.Errorf("Unexpected PPM header: %q", string(data[:min(len(data), 16)]))
	}

	pngPath := filepath.Join(dir, "out.PNG")
	if err := writeImage(pngPath, pixels); err != nil {
		t.Fatalf("writeImage(png) failed: %v", err)
	}
	data, err = os.ReadFile(pngPath)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("Expected PNG signature")
	}
}

func TestTerminalLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := &terminalLogger{w: &buf}
	logger.Printf("Scanlines remaining: %d", 2)
	logger.Printf("Scanlines remaining: %d", 0)
	logger.Done()

	want := "\rScanlines remaining: 2 \rScanlines remaining: 0 \nDone.\n"
	if got := buf.String(); got != want {
		t.Errorf("terminal output = %q, want %q", got, want)
	}
}

func TestRenderSummary(t *testing.T) {
	got := renderSummary(renderer.RenderStats{
		TotalPixels:    4,
		TotalSamples:   16,
		AverageSamples: 4,
		MaxSamples:     4,
		MinSamples:     2,
		MaxSamplesUsed: 6,
		MeanVariance:   0.125,
	})
	want := "16 samples over 4 pixels (4.0 per pixel, min 2, max 6 of 4 requested), mean luminance variance 0.12500"
	if got != want {
		t.Errorf("renderSummary() = %q, want %q", got, want)
	}
}
