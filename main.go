package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// renderOptions holds the command line settings for one render
type renderOptions struct {
	Scene     string
	Samples   int // 0 keeps the scene's own setting
	Depth     int // 0 keeps the scene's own setting
	Width     int // 0 keeps the scene's own setting
	Seed      int64
	OutputDir string
	Thumbnail int // Max thumbnail side, 0 disables
	Upload    bool
}

func main() {
	// Parse command line flags
	opts := renderOptions{}
	flag.StringVar(&opts.Scene, "scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	flag.IntVar(&opts.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.Depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flag.IntVar(&opts.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.Int64Var(&opts.Seed, "seed", 42, "Random seed for scene layout and sampling")
	flag.StringVar(&opts.OutputDir, "out", "output", "Output directory")
	flag.IntVar(&opts.Thumbnail, "thumb", 0, "Also write a thumbnail no larger than this many pixels")
	flag.BoolVar(&opts.Upload, "upload", false, "Upload the render to S3 (configured via environment or .env)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.List() {
			fmt.Printf("  %-10s - %s\n", info.Name, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
		return
	}

	// A missing .env is fine; the process environment still applies
	_ = godotenv.Load(".env")

	if err := run(context.Background(), opts, log.Default()); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}

// createScene builds the named scene
func createScene(name string, seed int64) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name is required")
	}
	return scene.New(name, seed)
}

// newRaytracer applies the command line overrides to the scene's settings
func newRaytracer(sceneObj *scene.Scene, opts renderOptions, logger core.Logger) (*renderer.Raytracer, int, int) {
	cameraConfig := sceneObj.CameraConfig
	if opts.Width > 0 {
		cameraConfig.Width = opts.Width
	}
	width, height := cameraConfig.Width, cameraConfig.Height()

	sampling := sceneObj.SamplingConfig
	if opts.Samples > 0 {
		sampling.SamplesPerPixel = opts.Samples
	}
	if opts.Depth > 0 {
		sampling.MaxDepth = opts.Depth
	}

	raytracer := renderer.NewRaytracer(sceneObj, width, height, logger)
	raytracer.SetSamplingConfig(sampling)
	raytracer.SetSampler(core.NewSeededSampler(opts.Seed))
	return raytracer, width, height
}

// run renders one image and writes it, plus the optional thumbnail and upload
func run(ctx context.Context, opts renderOptions, logger *log.Logger) error {
	sceneObj, err := createScene(opts.Scene, opts.Seed)
	if err != nil {
		return err
	}

	var uploader *output.Uploader
	if opts.Upload {
		uploader, err = output.NewUploader(output.S3ConfigFromEnv())
		if err != nil {
			return fmt.Errorf("upload requested: %w", err)
		}
	}

	raytracer, width, height := newRaytracer(sceneObj, opts, logger)
	logger.Printf("Rendering %s scene at %dx%d (%d objects)", opts.Scene, width, height, sceneObj.GetPrimitiveCount())

	img, stats := raytracer.RenderPass()
	logger.Printf("Render completed in %v (%d samples per pixel, %d total samples)",
		stats.Duration, stats.SamplesPerPixel, stats.TotalSamples)
	logger.Printf("Average luminance: %.4f", renderer.CalculateAverageLuminance(img))

	timestamp := time.Now().Format("20060102_150405")
	filename := output.RenderPath(opts.OutputDir, opts.Scene, timestamp)
	if err := output.SavePNG(filename, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s", filename)

	if opts.Thumbnail > 0 {
		thumbName := output.ThumbnailPath(filename)
		if err := output.SavePNG(thumbName, output.Thumbnail(img, opts.Thumbnail)); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s", thumbName)
	}

	if uploader != nil {
		key := path.Join(opts.Scene, fmt.Sprintf("render_%s.png", timestamp))
		if err := uploader.UploadPNG(ctx, key, img); err != nil {
			return err
		}
		logger.Printf("Uploaded %s", key)
	}

	return nil
}
