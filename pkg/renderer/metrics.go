package renderer

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	sceneKey = tag.MustNewKey("scene")

	samplesMeasure = stats.Int64("raytracer/samples", "Camera samples traced", stats.UnitDimensionless)
	rowsMeasure    = stats.Int64("raytracer/rows", "Image rows completed", stats.UnitDimensionless)

	// SamplesView sums traced camera samples per scene
	SamplesView = &view.View{
		Name:        "raytracer/samples",
		Description: "Total camera samples traced",
		TagKeys:     []tag.Key{sceneKey},
		Measure:     samplesMeasure,
		Aggregation: view.Sum(),
	}

	// RowsView counts completed rows per scene
	RowsView = &view.View{
		Name:        "raytracer/rows",
		Description: "Counter of image rows that have been rendered",
		TagKeys:     []tag.Key{sceneKey},
		Measure:     rowsMeasure,
		Aggregation: view.Count(),
	}
)

// RegisterViews registers the renderer's metric views with opencensus
func RegisterViews() error {
	return view.Register(SamplesView, RowsView)
}

// recordRow records one finished row and the samples it traced
func recordRow(ctx context.Context, sceneName string, samples int64) error {
	return stats.RecordWithOptions(
		ctx,
		stats.WithTags(tag.Upsert(sceneKey, sceneName)),
		stats.WithMeasurements(rowsMeasure.M(1), samplesMeasure.M(samples)))
}
