package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/df07/go-shadow-raytracer/pkg/core"
)

// ColorToBytes converts a linear color to 8-bit components with gamma 2.
// Components are clamped to [0, 0.999] before scaling by 256.
func ColorToBytes(c core.Vec3) (r, g, b uint8) {
	corrected := c.Clamp(0, math.Inf(1)).GammaCorrect(2).Clamp(0.0, 0.999)
	return uint8(256 * corrected.X), uint8(256 * corrected.Y), uint8(256 * corrected.Z)
}

// ToImage converts pixel statistics, top row first, into an RGBA image
func ToImage(pixels [][]PixelStats) *image.RGBA {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, row := range pixels {
		for x := range row {
			r, g, b := ColorToBytes(row[x].GetColor())
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG encodes the pixels as a PNG image
func WritePNG(w io.Writer, pixels [][]PixelStats) error {
	if err := png.Encode(w, ToImage(pixels)); err != nil {
		return fmt.Errorf("while encoding png: %w", err)
	}
	return nil
}

// WritePPM writes the pixels in the plain-text P3 format, top row first
func WritePPM(w io.Writer, pixels [][]PixelStats) error {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)
	for _, row := range pixels {
		for x := range row {
			r, g, b := ColorToBytes(row[x].GetColor())
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing ppm: %w", err)
	}
	return nil
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(pixels)
}
