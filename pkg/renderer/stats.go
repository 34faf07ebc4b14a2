package renderer

import "github.com/df07/go-shadow-raytracer/pkg/core"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MaxSamples     int     // Samples requested per pixel
	MinSamples     int     // Minimum samples taken per pixel
	MaxSamplesUsed int     // Maximum samples actually used by any pixel
	MeanVariance   float64 // Mean per-pixel luminance variance
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// GetVariance returns the luminance variance of the samples taken so far
func (ps *PixelStats) GetVariance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return max(0, ps.LuminanceSqAccum/n-mean*mean)
}

// computeRenderStats summarizes the pixel statistics of a finished pass
func computeRenderStats(pixels [][]PixelStats, maxSamples int) RenderStats {
	stats := RenderStats{MaxSamples: maxSamples, MinSamples: -1}
	for _, row := range pixels {
		for i := range row {
			count := row[i].SampleCount
			stats.TotalPixels++
			stats.TotalSamples += count
			if stats.MinSamples < 0 || count < stats.MinSamples {
				stats.MinSamples = count
			}
			if count > stats.MaxSamplesUsed {
				stats.MaxSamplesUsed = count
			}
			stats.MeanVariance += row[i].GetVariance()
		}
	}
	if stats.MinSamples < 0 {
		stats.MinSamples = 0
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
		stats.MeanVariance /= float64(stats.TotalPixels)
	}
	return stats
}
