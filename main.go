// raytracer renders the built-in scenes with a shadow-ray tracer and writes
// the result as a PPM or PNG image.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-shadow-raytracer/pkg/config"
	"github.com/df07/go-shadow-raytracer/pkg/core"
	"github.com/df07/go-shadow-raytracer/pkg/integrator"
	"github.com/df07/go-shadow-raytracer/pkg/renderer"
	"github.com/df07/go-shadow-raytracer/pkg/scene"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var cmdRoot = &cobra.Command{
	Use:   "raytracer",
	Short: "Shadow-ray tracer for spheres, cubes and tori",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// glog reads its flags from the standard flag set
		flag.CommandLine.Parse([]string{})
	},
}

var (
	configPath string
	renderOpts = config.Default()
)

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to an image file",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		return render(ctx, opts)
	},
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, group := range scene.DefaultRegistry().Groups() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", group.Name)
			for _, info := range group.Scenes {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s\n", info.ID, info.Description)
			}
		}
	},
}

func init() {
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmdRender.Flags().StringVar(&configPath, "config", "", "YAML or JSON options file; flags override its values")
	cmdRender.Flags().StringVar(&renderOpts.Scene, "scene", renderOpts.Scene, "Scene to render (see the scenes command)")
	cmdRender.Flags().StringVar(&renderOpts.Output, "output", renderOpts.Output, "Output file; .png writes PNG, '-' writes PPM to stdout, anything else PPM")
	cmdRender.Flags().IntVar(&renderOpts.Width, "width", renderOpts.Width, "Image width in pixels")
	cmdRender.Flags().Float64Var(&renderOpts.AspectRatio, "aspect-ratio", renderOpts.AspectRatio, "Image width divided by height")
	cmdRender.Flags().IntVar(&renderOpts.SamplesPerPixel, "samples", renderOpts.SamplesPerPixel, "Samples per pixel")
	cmdRender.Flags().IntVar(&renderOpts.MaxDepth, "depth", renderOpts.MaxDepth, "Maximum ray bounce depth")
	cmdRender.Flags().Int64Var(&renderOpts.Seed, "seed", renderOpts.Seed, "Seed for scene content and sampling")
	cmdRender.Flags().IntVar(&renderOpts.Workers, "workers", renderOpts.Workers, "Rows rendered concurrently, 0 for one per CPU")
}

// resolveOptions loads the config file, if any, then applies explicitly set flags
func resolveOptions(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Options{}, err
		}
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("scene") {
		opts.Scene = renderOpts.Scene
	}
	if flags.Changed("output") {
		opts.Output = renderOpts.Output
	}
	if flags.Changed("width") {
		opts.Width = renderOpts.Width
	}
	if flags.Changed("aspect-ratio") {
		opts.AspectRatio = renderOpts.AspectRatio
	}
	if flags.Changed("samples") {
		opts.SamplesPerPixel = renderOpts.SamplesPerPixel
	}
	if flags.Changed("depth") {
		opts.MaxDepth = renderOpts.MaxDepth
	}
	if flags.Changed("seed") {
		opts.Seed = renderOpts.Seed
	}
	if flags.Changed("workers") {
		opts.Workers = renderOpts.Workers
	}

	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}

// createScene builds the named scene from the options
func createScene(opts config.Options) (*scene.Scene, error) {
	s, err := scene.DefaultRegistry().Build(opts.Scene, opts.BuildOptions())
	if err != nil {
		return nil, fmt.Errorf("while building scene: %w", err)
	}
	return s, nil
}

func render(ctx context.Context, opts config.Options) error {
	selectedScene, err := createScene(opts)
	if err != nil {
		return err
	}

	if err := renderer.RegisterViews(); err != nil {
		return fmt.Errorf("while registering metric views: %w", err)
	}

	glog.Infof("Rendering scene %q at %dx%d, %d samples per pixel, depth %d, %d primitives",
		selectedScene.Name,
		selectedScene.SamplingConfig.Width, selectedScene.SamplingConfig.Height,
		selectedScene.SamplingConfig.SamplesPerPixel, selectedScene.SamplingConfig.MaxDepth,
		selectedScene.GetPrimitiveCount())

	integ := integrator.NewShadowTracingIntegrator(opts.Integrator)
	logger := progressLogger()
	raytracer := renderer.NewRaytracer(selectedScene, integ, opts.RenderConfig(), logger)

	startTime := time.Now()
	pixels, stats, err := raytracer.RenderPass(ctx)
	if terminal, ok := logger.(*terminalLogger); ok {
		terminal.Done()
	}
	if err != nil {
		return fmt.Errorf("while rendering: %w", err)
	}
	glog.Infof("Render completed in %v: %s", time.Since(startTime), renderSummary(stats))

	if err := writeImage(opts.Output, pixels); err != nil {
		return err
	}
	glog.Infof("Average luminance %.3f", renderer.CalculateAverageLuminance(renderer.ToImage(pixels)))
	return nil
}

// renderSummary formats the sample and noise statistics of a finished render
func renderSummary(stats renderer.RenderStats) string {
	return fmt.Sprintf("%d samples over %d pixels (%.1f per pixel, min %d, max %d of %d requested), mean luminance variance %.5f",
		stats.TotalSamples, stats.TotalPixels, stats.AverageSamples,
		stats.MinSamples, stats.MaxSamplesUsed, stats.MaxSamples, stats.MeanVariance)
}

// writeImage writes the pixels in the format implied by the output name
func writeImage(output string, pixels [][]renderer.PixelStats) error {
	if output == "-" {
		return renderer.WritePPM(os.Stdout, pixels)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("while creating output directory: %w", err)
		}
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("while creating output file: %w", err)
	}
	defer file.Close()

	write := renderer.WritePPM
	if strings.EqualFold(filepath.Ext(output), ".png") {
		write = renderer.WritePNG
	}
	if err := write(file, pixels); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("while closing output file: %w", err)
	}

	glog.Infof("Render saved as %s", output)
	return nil
}

// terminalLogger rewrites a single status line in place
type terminalLogger struct {
	w io.Writer
}

func (l *terminalLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "\r"+format+" ", args...)
}

// Done ends the status line so later output starts on a fresh line
func (l *terminalLogger) Done() {
	fmt.Fprint(l.w, "\nDone.\n")
}

// progressLogger returns an in-place progress line on a terminal, glog otherwise
func progressLogger() core.Logger {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return &terminalLogger{w: os.Stderr}
	}
	return core.NewGlogLogger(0)
}

func main() {
	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	cmdRoot.AddCommand(cmdRender, cmdScenes)

	if err := cmdRoot.Execute(); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
}
