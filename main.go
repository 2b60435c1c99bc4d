package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/mwagner-dev/pathtrace/pkg/core"
	"github.com/mwagner-dev/pathtrace/pkg/renderer"
	"github.com/mwagner-dev/pathtrace/pkg/scene"
)

var sceneNames = []string{
	"weekend_final", "perlin", "cornel_instances", "cornel_is", "cornel_volumes", "next_week_final",
}

// flagSet is shared between parseFlags and showHelp so -help can print the
// flags actually registered rather than the (otherwise unused) global
// flag.CommandLine.
var flagSet = flag.NewFlagSet("pathtrace", flag.ExitOnError)

// showHelpFlag, unlike the rest of RenderConfig, is only meaningful to main
// and never travels with core.RenderConfig.
var showHelpFlag bool

func main() {
	config := parseFlags()
	if showHelpFlag {
		showHelp()
		return
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	if err := run(config, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the requested scene, renders it, and writes a PPM image to
// standard output.
func run(config core.RenderConfig, logger core.Logger) error {
	colorFunc, err := pickColorFunc(config.Renderer)
	if err != nil {
		return errors.Wrap(err, "invalid renderer")
	}

	width, height := config.Sampling.Width, config.Sampling.Height
	if width <= 0 || height <= 0 || config.Sampling.SamplesPerPixel <= 0 || config.Sampling.MaxBounces < 0 {
		return errors.Errorf("width, height and samples must be positive and bounces non-negative (got %dx%d, %d spp, %d bounces)",
			width, height, config.Sampling.SamplesPerPixel, config.Sampling.MaxBounces)
	}
	aspect := float64(width) / float64(height)
	sc, err := buildScene(config.Scene, aspect, config.Sampling.MaxBounces)
	if err != nil {
		return errors.Wrapf(err, "failed to build scene %q", config.Scene)
	}

	logger.Printf("rendering scene %s at %dx%d, %d spp, %s renderer", config.Scene, width, height, config.Sampling.SamplesPerPixel, config.Renderer)
	start := time.Now()

	sampler := renderer.NewSampler(sc, width, height, config.Sampling.SamplesPerPixel, colorFunc, 0)
	pixels := sampler.Render()

	logger.Printf("render finished in %s", time.Since(start))

	if err := renderer.WritePPM(os.Stdout, width, height, pixels); err != nil {
		return errors.Wrap(err, "failed to write PPM output")
	}
	return nil
}

// pickColorFunc resolves the -r/--renderer flag to a renderer.ColorFunc.
func pickColorFunc(kind core.RenderKind) (renderer.ColorFunc, error) {
	switch kind {
	case core.RenderBruteForce:
		return renderer.NewBruteForce().Color, nil
	case core.RenderMonteCarlo:
		return renderer.NewMonteCarlo(0.5).Color, nil
	default:
		return nil, errors.Errorf("unknown renderer %q (want brute_force or monte_carlo)", kind)
	}
}

// buildScene resolves the positional subcommand to a scene factory.
func buildScene(name string, aspect float64, ttl int) (*renderer.Scene, error) {
	switch name {
	case "weekend_final":
		return scene.NewWeekendFinal(aspect, ttl), nil
	case "perlin":
		return scene.NewPerlin(aspect, ttl), nil
	case "cornel_instances":
		return scene.NewCornelInstances(aspect, ttl), nil
	case "cornel_is":
		return scene.NewCornelIS(aspect, ttl), nil
	case "cornel_volumes":
		return scene.NewCornelVolumes(aspect, ttl), nil
	case "next_week_final":
		return scene.NewNextWeekFinal(aspect, ttl)
	default:
		return nil, errors.Errorf("unknown scene %q (want one of %v)", name, sceneNames)
	}
}

// parseFlags parses command line flags and the positional scene name into
// a core.RenderConfig.
func parseFlags() core.RenderConfig {
	var rendererName string
	sampling := core.SamplingConfig{}
	flagSet.StringVar(&rendererName, "r", "monte_carlo", "renderer: brute_force or monte_carlo")
	flagSet.StringVar(&rendererName, "renderer", "monte_carlo", "renderer: brute_force or monte_carlo")
	flagSet.IntVar(&sampling.Width, "w", 512, "image width")
	flagSet.IntVar(&sampling.Width, "width", 512, "image width")
	flagSet.IntVar(&sampling.Height, "h", 512, "image height")
	flagSet.IntVar(&sampling.Height, "height", 512, "image height")
	flagSet.IntVar(&sampling.SamplesPerPixel, "s", 400, "samples per pixel")
	flagSet.IntVar(&sampling.SamplesPerPixel, "samples", 400, "samples per pixel")
	flagSet.IntVar(&sampling.MaxBounces, "b", 12, "maximum ray bounces")
	flagSet.IntVar(&sampling.MaxBounces, "bounces", 12, "maximum ray bounces")
	flagSet.BoolVar(&showHelpFlag, "help", false, "show help information")
	flagSet.Parse(os.Args[1:])

	sceneName := "weekend_final"
	if args := flagSet.Args(); len(args) > 0 {
		sceneName = args[0]
	}

	return core.RenderConfig{
		Scene:    sceneName,
		Renderer: core.RenderKind(rendererName),
		Sampling: sampling,
	}
}

// showHelp prints usage information to standard output.
func showHelp() {
	fmt.Println("pathtrace: an offline Monte Carlo path tracer")
	fmt.Println("Usage: pathtrace [options] [scene]")
	fmt.Println()
	fmt.Println("Scenes:")
	for _, name := range sceneNames {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Options:")
	flagSet.SetOutput(os.Stdout)
	flagSet.PrintDefaults()
	fmt.Println()
	fmt.Println("Output is written as a PPM (P3) image to standard output.")
	fmt.Println("Example: pathtrace -s 200 -w 400 -h 400 cornel_instances > out.ppm")
}
