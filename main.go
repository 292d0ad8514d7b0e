package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
	"github.com/kaelstrom/go-pathtracer/pkg/integrator"
	"github.com/kaelstrom/go-pathtracer/pkg/output"
	"github.com/kaelstrom/go-pathtracer/pkg/renderer"
	"github.com/kaelstrom/go-pathtracer/pkg/scene"
	"github.com/kaelstrom/go-pathtracer/pkg/sceneio"
)

func main() {
	sceneFile := flag.String("scene", "", "path to a JSON scene description; built-in demo scene used when empty")
	demo := flag.String("demo", "diffuse-sphere", "built-in demo scene: diffuse-sphere, emissive-sphere, glass-over-red-plane, hollow-glass-over-red-plane, empty, plane-and-skylight, parallelepiped")
	width := flag.Int("width", 400, "image width in pixels")
	aspectRatio := flag.Float64("aspect-ratio", 16.0/9.0, "image aspect ratio (W/H)")
	samples := flag.Int("samples", 100, "samples per pixel")
	maxDepth := flag.Int("max-depth", 50, "maximum ray bounce depth")
	workers := flag.Int("workers", 0, "worker count; 0 means hardware parallelism")
	blockSize := flag.Int("block-size", renderer.DefaultBlockSize, "rows per scheduling tile")
	seed := flag.Int64("seed", 1, "render seed")
	format := flag.String("format", "png", "output format: png or ppm")
	out := flag.String("out", "render.png", "output file path")
	help := flag.Bool("help", false, "show help information")
	flag.Parse()

	if *help {
		fmt.Println("go-pathtracer: an offline Monte-Carlo path tracer")
		fmt.Println()
		flag.PrintDefaults()
		return
	}

	built, cfg, err := loadScene(*sceneFile, *demo, *width, *aspectRatio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if cfg.SamplesPerPixel == 0 {
		cfg.SamplesPerPixel = *samples
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = *maxDepth
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = *workers
	}
	if cfg.BlockSize == 0 {
		cfg.BlockSize = *blockSize
	}
	if cfg.Seed == 0 {
		cfg.Seed = *seed
	}

	rayColor := func(ray core.Ray, rng *rand.Rand) core.Vec3 {
		return integrator.RayColor(ray, built.Geometry, built.Background, cfg.MaxDepth, rng)
	}

	fmt.Printf("Rendering %dx%d at %d samples/pixel, depth %d, %d workers...\n",
		built.Width, built.Height, cfg.SamplesPerPixel, cfg.MaxDepth, resolvedWorkerCount(cfg))

	start := time.Now()
	fb, _ := renderer.Render(built.Camera, built.Width, built.Height, cfg, rayColor)
	elapsed := time.Since(start)
	fmt.Printf("Render completed in %v\n", elapsed)

	if err := writeOutput(*out, *format, fb); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}

func loadScene(path, demo string, width int, aspectRatio float64) (*scene.Scene, renderer.Config, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, renderer.Config{}, err
		}
		return sceneio.Decode(data)
	}

	height := int(float64(width) / aspectRatio)
	built, err := loadDemoScene(demo, width, height)
	return built, renderer.Config{}, err
}

func loadDemoScene(name string, width, height int) (*scene.Scene, error) {
	switch name {
	case "diffuse-sphere":
		return scene.NewDiffuseSphereScene(width, height)
	case "emissive-sphere":
		return scene.NewEmissiveSphereScene(width, height)
	case "glass-over-red-plane":
		return scene.NewGlassOverRedPlaneScene(width, height, false)
	case "hollow-glass-over-red-plane":
		return scene.NewGlassOverRedPlaneScene(width, height, true)
	case "empty":
		return scene.NewEmptyScene(width, height), nil
	case "plane-and-skylight":
		return scene.NewPlaneAndSkylightScene(width, height)
	case "parallelepiped":
		return scene.NewParallelepipedScene(width, height)
	default:
		return nil, fmt.Errorf("unknown demo scene %q", name)
	}
}

func writeOutput(path, format string, fb *renderer.Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "png":
		return output.EncodePNG(file, fb)
	case "ppm":
		return output.EncodePPM(file, fb)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func resolvedWorkerCount(cfg renderer.Config) int {
	if cfg.WorkerCount > 0 {
		return cfg.WorkerCount
	}
	return runtime.NumCPU()
}
