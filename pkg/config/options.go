package config

import (
	"fmt"
	"os"
	"time"

	"github.com/df07/go-shadow-raytracer/pkg/geometry"
	"github.com/df07/go-shadow-raytracer/pkg/integrator"
	"github.com/df07/go-shadow-raytracer/pkg/lights"
	"github.com/df07/go-shadow-raytracer/pkg/renderer"
	"github.com/df07/go-shadow-raytracer/pkg/scene"
	"golang.org/x/xerrors"
	"sigs.k8s.io/yaml"
)

// Options is the full set of render settings. Files may be YAML or JSON.
type Options struct {
	Scene           string  `json:"scene"`
	Output          string  `json:"output"`
	Width           int     `json:"width"`
	AspectRatio     float64 `json:"aspectRatio"`
	SamplesPerPixel int     `json:"samplesPerPixel"`
	MaxDepth        int     `json:"maxDepth"`
	Seed            int64   `json:"seed"`
	Workers         int     `json:"workers"`

	// ProgressInterval is a Go duration string, e.g. "500ms"
	ProgressInterval string `json:"progressInterval"`

	Shading    lights.ShadingConfig `json:"shading"`
	Integrator integrator.Config    `json:"integrator"`
	Tolerances geometry.Tolerances  `json:"tolerances"`
	March      geometry.MarchConfig `json:"march"`
}

// Default returns the options used when nothing is configured
func Default() Options {
	return Options{
		Scene:            "random-spheres",
		Output:           "output.ppm",
		Width:            400,
		AspectRatio:      16.0 / 9.0,
		SamplesPerPixel:  10,
		MaxDepth:         12,
		Seed:             42,
		ProgressInterval: "1s",
		Shading:          lights.DefaultShadingConfig(),
		Integrator:       integrator.DefaultConfig(),
		Tolerances:       geometry.DefaultTolerances(),
		March:            geometry.DefaultMarchConfig(),
	}
}

// Load reads options from a YAML or JSON file. Fields absent from the file keep their defaults.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, xerrors.Errorf("while reading config file %q: %w", path, err)
	}
	opts, err := Parse(data)
	if err != nil {
		return Options{}, xerrors.Errorf("while parsing config file %q: %w", path, err)
	}
	return opts, nil
}

// Parse decodes YAML or JSON options on top of the defaults and validates them
func Parse(data []byte) (Options, error) {
	opts := Default()
	if err := yaml.UnmarshalStrict(data, &opts); err != nil {
		return Options{}, xerrors.Errorf("while decoding options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Marshal encodes the options as YAML
func (o Options) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, xerrors.Errorf("while encoding options: %w", err)
	}
	return data, nil
}

// Validate reports the first invalid setting as a *ValidationError
func (o Options) Validate() error {
	switch {
	case o.Width <= 0:
		return NewValidationError("width", o.Width, "must be positive")
	case o.AspectRatio <= 0:
		return NewValidationError("aspectRatio", o.AspectRatio, "must be positive")
	case o.SamplesPerPixel <= 0:
		return NewValidationError("samplesPerPixel", o.SamplesPerPixel, "must be positive")
	case o.MaxDepth <= 0:
		return NewValidationError("maxDepth", o.MaxDepth, "must be positive")
	case o.Workers < 0:
		return NewValidationError("workers", o.Workers, "must not be negative")
	case o.Shading.KDiffuse < 0:
		return NewValidationError("shading.kDiffuse", o.Shading.KDiffuse, "must not be negative")
	case o.Shading.KSpecular < 0:
		return NewValidationError("shading.kSpecular", o.Shading.KSpecular, "must not be negative")
	case o.Shading.Shininess < 0:
		return NewValidationError("shading.shininess", o.Shading.Shininess, "must not be negative")
	case o.Shading.ShadowTMin < 0:
		return NewValidationError("shading.shadowTMin", o.Shading.ShadowTMin, "must not be negative")
	case o.Integrator.LitContribution < 0:
		return NewValidationError("integrator.litContribution", o.Integrator.LitContribution, "must not be negative")
	case o.Integrator.ShadowedContribution < 0:
		return NewValidationError("integrator.shadowedContribution", o.Integrator.ShadowedContribution, "must not be negative")
	case o.Integrator.HitTMin < 0:
		return NewValidationError("integrator.hitTMin", o.Integrator.HitTMin, "must not be negative")
	case o.Tolerances.Parallel < 0:
		return NewValidationError("tolerances.parallel", o.Tolerances.Parallel, "must not be negative")
	case o.Tolerances.Barycentric < 0:
		return NewValidationError("tolerances.barycentric", o.Tolerances.Barycentric, "must not be negative")
	case o.March.Epsilon <= 0:
		return NewValidationError("march.epsilon", o.March.Epsilon, "must be positive")
	case o.March.MaxSteps <= 0:
		return NewValidationError("march.maxSteps", o.March.MaxSteps, "must be positive")
	}
	if _, err := o.progressInterval(); err != nil {
		return NewValidationError("progressInterval", o.ProgressInterval, err.Error())
	}
	return nil
}

func (o Options) progressInterval() (time.Duration, error) {
	if o.ProgressInterval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(o.ProgressInterval)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return d, nil
}

// BuildOptions returns the scene builder settings
func (o Options) BuildOptions() scene.BuildOptions {
	return scene.BuildOptions{
		Seed:            o.Seed,
		SamplesPerPixel: o.SamplesPerPixel,
		MaxDepth:        o.MaxDepth,
		Camera: geometry.CameraConfig{
			Width:       o.Width,
			AspectRatio: o.AspectRatio,
		},
		Tolerances: o.Tolerances,
		March:      o.March,
		Shading:    o.Shading,
	}
}

// RenderConfig returns the render pass settings. Options are assumed valid.
func (o Options) RenderConfig() renderer.Config {
	interval, _ := o.progressInterval()
	return renderer.Config{
		Seed:             o.Seed,
		NumWorkers:       o.Workers,
		ProgressInterval: interval,
	}
}
