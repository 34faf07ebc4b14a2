package renderer

import (
	"context"
	"math/rand"
	"time"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/integrator"
	"github.com/df07/go-shadow-raytracer/pkg/scene"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Config controls a render pass
type Config struct {
	Seed             int64         // Base seed; row j samples with Seed+j
	NumWorkers       int           // Concurrent rows, zero for one per CPU
	ProgressInterval time.Duration // Minimum time between progress log lines
}

// DefaultConfig returns the render settings used when none are given
func DefaultConfig() Config {
	return Config{
		Seed:             42,
		ProgressInterval: time.Second,
	}
}

// Raytracer renders a scene by averaging jittered samples per pixel
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	width      int
	height     int
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The image size comes from the scene's sampling config.
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NewGlogLogger(1)
	}
	return &Raytracer{
		scene:      s,
		integrator: integ,
		width:      s.SamplingConfig.Width,
		height:     s.SamplingConfig.Height,
		config:     config,
		logger:     logger,
	}
}

// RenderPass renders the full image. The returned pixels are indexed [y][x]
// with y=0 the top row. Each row draws from its own seeded generator, so the
// result does not depend on the number of workers.
func (rt *Raytracer) RenderPass(ctx context.Context) ([][]PixelStats, RenderStats, error) {
	tracer := otel.Tracer("go-shadow-raytracer/renderer")
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Raytracer.RenderPass")
	defer span.End()

	span.SetAttributes(
		attribute.String("scene", rt.scene.Name),
		attribute.Int64("width", int64(rt.width)),
		attribute.Int64("height", int64(rt.height)),
		attribute.Int64("samples_per_pixel", int64(rt.scene.SamplingConfig.SamplesPerPixel)),
	)

	pixels := make([][]PixelStats, rt.height)
	for y := range pixels {
		pixels[y] = make([]PixelStats, rt.width)
	}

	progress := NewProgressReporter(rt.logger, rt.height, rt.config.ProgressInterval)
	pool := NewWorkerPool(rt.config.NumWorkers)

	err := pool.Run(ctx, rt.height, func(ctx context.Context, j int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Row j counts up from the bottom of the image
		samples := rt.renderRow(j, pixels[rt.height-1-j])
		if err := recordRow(ctx, rt.scene.Name, samples); err != nil {
			rt.logger.Printf("Failed to record metrics for row %d: %v", j, err)
		}
		progress.RowDone()
		return nil
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, RenderStats{}, err
	}

	stats := computeRenderStats(pixels, rt.scene.SamplingConfig.SamplesPerPixel)
	span.SetAttributes(attribute.Int64("total_samples", int64(stats.TotalSamples)))
	span.SetStatus(codes.Ok, "")
	return pixels, stats, nil
}

// renderRow traces every sample of row j into out and returns the sample count
func (rt *Raytracer) renderRow(j int, out []PixelStats) int64 {
	random := rand.New(rand.NewSource(rt.config.Seed + int64(j)))
	sampler := core.NewRandomSampler(random)

	samplesPerPixel := rt.scene.SamplingConfig.SamplesPerPixel
	maxDepth := rt.scene.SamplingConfig.MaxDepth
	uScale := 1.0 / float64(max(1, rt.width-1))
	vScale := 1.0 / float64(max(1, rt.height-1))

	var samples int64
	for i := 0; i < rt.width; i++ {
		for s := 0; s < samplesPerPixel; s++ {
			u := (float64(i) + random.Float64()) * uScale
			v := (float64(j) + random.Float64()) * vScale

			ray := rt.scene.Camera.GetRay(u, v, sampler)
			out[i].AddSample(rt.integrator.RayColor(ray, rt.scene, sampler, maxDepth))
			samples++
		}
	}
	return samples
}
