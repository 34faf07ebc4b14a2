package renderer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/integrator"
	"github.com/df07/go-shadow-raytracer/pkg/lights"
	"github.com/df07/go-shadow-raytracer/pkg/material"
	"github.com/df07/go-shadow-raytracer/pkg/scene"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.opencensus.io/stats/view"
)

// createTestScene creates a small scene with a sphere on a ground sphere
func createTestScene(name string) *scene.Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 1, 4),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       8,
		AspectRatio: 2.0,
		VFov:        40.0,
	}
	s := scene.NewScene(name, cameraConfig, scene.SamplingConfig{SamplesPerPixel: 3, MaxDepth: 4})
	s.AddShapes(
		geometry.NewSphere(core.NewVec3(0, -100, 0), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 0.5, 0), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2)),
	)
	s.AddLights(lights.NewPointLight(core.NewVec3(1, 1, 1), core.NewVec3(-5, 5, 5)))
	return s
}

func newTestRaytracer(s *scene.Scene, workers int) *Raytracer {
	config := DefaultConfig()
	config.NumWorkers = workers
	integ := integrator.NewShadowTracingIntegrator(integrator.DefaultConfig())
	return NewRaytracer(s, integ, config, &recordingLogger{})
}

func TestRaytracer_RenderPass(t *testing.T) {
	s := createTestScene("renderpass-test")
	pixels, stats, err := newTestRaytracer(s, 2).RenderPass(context.Background())
	if err != nil {
		t.Fatalf("RenderPass() failed: %v", err)
	}

	if len(pixels) != 4 || len(pixels[0]) != 8 {
		t.Fatalf("Expected 8x4 pixels, got %dx%d", len(pixels[0]), len(pixels))
	}

	want := RenderStats{
		TotalPixels:    32,
		TotalSamples:   96,
		AverageSamples: 3,
		MaxSamples:     3,
		MinSamples:     3,
		MaxSamplesUsed: 3,
	}
	if diff := cmp.Diff(want, stats, cmpopts.IgnoreFields(RenderStats{}, "MeanVariance")); diff != "" {
		t.Errorf("RenderStats mismatch (-want +got):\n%s", diff)
	}

	if stats.MeanVariance <= 0 {
		t.Errorf("Expected jittered samples to vary, got mean variance %f", stats.MeanVariance)
	}

	// The top row looks over the horizon into the sky
	top := pixels[0][4].GetColor()
	if top.Z <= top.X {
		t.Errorf("Expected bluish sky at the top, got %v", top)
	}
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	s := createTestScene("determinism-test")

	single, _, err := newTestRaytracer(s, 1).RenderPass(context.Background())
	if err != nil {
		t.Fatalf("RenderPass() with 1 worker failed: %v", err)
	}
	parallel, _, err := newTestRaytracer(s, 4).RenderPass(context.Background())
	if err != nil {
		t.Fatalf("RenderPass() with 4 workers failed: %v", err)
	}

	if diff := cmp.Diff(single, parallel); diff != "" {
		t.Errorf("Worker count changed the image (-single +parallel):\n%s", diff)
	}
}

func TestRaytracer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newTestRaytracer(createTestScene("cancel-test"), 2).RenderPass(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRaytracer_RecordsMetrics(t *testing.T) {
	if err := RegisterViews(); err != nil {
		t.Fatalf("RegisterViews() failed: %v", err)
	}

	const sceneName = "metrics-test"
	s := createTestScene(sceneName)
	if _, _, err := newTestRaytracer(s, 2).RenderPass(context.Background()); err != nil {
		t.Fatalf("RenderPass() failed: %v", err)
	}

	rows, err := view.RetrieveData(RowsView.Name)
	if err != nil {
		t.Fatalf("RetrieveData(%q) failed: %v", RowsView.Name, err)
	}
	var rowCount int64 = -1
	for _, row := range rows {
		for _, tag := range row.Tags {
			if tag.Key == sceneKey && tag.Value == sceneName {
				rowCount = row.Data.(*view.CountData).Value
			}
		}
	}
	if rowCount != int64(s.SamplingConfig.Height) {
		t.Errorf("Expected %d rows recorded, got %d", s.SamplingConfig.Height, rowCount)
	}

	samples, err := view.RetrieveData(SamplesView.Name)
	if err != nil {
		t.Fatalf("RetrieveData(%q) failed: %v", SamplesView.Name, err)
	}
	sampleSum := -1.0
	for _, row := range samples {
		for _, tag := range row.Tags {
			if tag.Key == sceneKey && tag.Value == sceneName {
				sampleSum = row.Data.(*view.SumData).Value
			}
		}
	}
	if sampleSum != 96 {
		t.Errorf("Expected 96 samples recorded, got %f", sampleSum)
	}
}

func TestRaytracer_MetricsErrorIsLogged(t *testing.T) {
	if err := RegisterViews(); err != nil {
		t.Fatalf("RegisterViews() failed: %v", err)
	}

	// Tag values must be printable ASCII
	const badName = "bad\x01scene"
	if err := recordRow(context.Background(), badName, 1); err == nil {
		t.Fatal("Expected recordRow to reject a non-printable scene name")
	}

	logger := &recordingLogger{}
	config := DefaultConfig()
	config.ProgressInterval = time.Hour
	integ := integrator.NewShadowTracingIntegrator(integrator.DefaultConfig())
	s := createTestScene(badName)
	if _, _, err := NewRaytracer(s, integ, config, logger).RenderPass(context.Background()); err != nil {
		t.Fatalf("RenderPass() failed: %v", err)
	}

	failures := 0
	for _, line := range logger.lines {
		if strings.HasPrefix(line, "Failed to record metrics for row") {
			failures++
		}
	}
	if failures != s.SamplingConfig.Height {
		t.Errorf("Expected %d metric failures logged, got %d in %q", s.SamplingConfig.Height, failures, logger.lines)
	}
}
