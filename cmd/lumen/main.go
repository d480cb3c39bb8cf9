// Command lumen renders a YAML scene description with the
// bidirectional path tracer and writes the result as a PNG. Flag
// layout mirrors df07.../main.go (-scene, -max-samples, -workers,
// -integrator) but is built on github.com/spf13/cobra instead of the
// standard flag package.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/kestrel-render/lumen/pkg/integrator"
	"github.com/kestrel-render/lumen/pkg/postprocess"
	"github.com/kestrel-render/lumen/pkg/render"
	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/scenefile"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

type options struct {
	scenePath      string
	outputPath     string
	samples        int
	maxBounces     int
	workers        int
	integrator     string
	medianRadius   int
	resizeScale    float64
	seed           int64
	normalizeDepth bool
}

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:   "lumen",
		Short: "Render a scene with the lumen bidirectional path tracer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	root.Flags().StringVar(&opts.scenePath, "scene", "", "path to a YAML scene description (required)")
	root.Flags().StringVar(&opts.outputPath, "out", "render.png", "output PNG path")
	root.Flags().IntVar(&opts.samples, "samples", 32, "number of independent full-frame samples to average")
	root.Flags().IntVar(&opts.maxBounces, "max-bounces", 6, "maximum bounces per path")
	root.Flags().IntVar(&opts.workers, "workers", 0, "number of parallel workers (0 = auto-detect CPU count)")
	root.Flags().StringVar(&opts.integrator, "integrator", "bdpt", "integrator: bdpt, pathtrace, forward, or depth")
	root.Flags().IntVar(&opts.medianRadius, "median-radius", 0, "despeckling median filter radius in pixels (0 disables)")
	root.Flags().Float64Var(&opts.resizeScale, "resize", 1.0, "scale the output image by this factor before encoding")
	root.Flags().Int64Var(&opts.seed, "seed", 1, "base RNG seed")
	root.Flags().BoolVar(&opts.normalizeDepth, "normalize-depth", false, "rescale depth output to [0,1] by the frame's own min/max (only with --integrator depth)")
	root.MarkFlagRequired("scene")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("lumen: building logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	data, err := os.ReadFile(opts.scenePath)
	if err != nil {
		return fmt.Errorf("lumen: reading scene file: %w", err)
	}

	s, cam, err := scenefile.Parse(data)
	if err != nil {
		return fmt.Errorf("lumen: parsing scene file: %w", err)
	}

	integ, err := buildIntegrator(opts.integrator, s, opts.maxBounces)
	if err != nil {
		return err
	}

	sugar.Infow("starting render",
		"scene", opts.scenePath,
		"integrator", opts.integrator,
		"samples", opts.samples,
		"maxBounces", opts.maxBounces,
		"width", cam.Width,
		"height", cam.Height,
	)

	start := time.Now()
	buf, stats, err := render.Render(ctx, cam, s, integ, render.Options{
		Samples: opts.samples,
		Workers: opts.workers,
		Seed:    opts.seed,
	})
	if err != nil {
		return fmt.Errorf("lumen: rendering: %w", err)
	}
	sugar.Infow("render complete",
		"elapsed", time.Since(start),
		"samples", stats.Samples,
		"workers", stats.Workers,
	)

	if opts.integrator == "depth" && opts.normalizeDepth {
		buf = postprocess.NormalizeDepth(buf)
	}

	if opts.medianRadius > 0 {
		buf = postprocess.MedianFilter(buf, opts.medianRadius)
	}

	img := toImage(buf)
	if opts.resizeScale != 1.0 {
		img = resizeImage(img, opts.resizeScale)
	}

	if err := writePNG(opts.outputPath, img); err != nil {
		return fmt.Errorf("lumen: writing %s: %w", opts.outputPath, err)
	}
	sugar.Infow("wrote image", "path", opts.outputPath)
	return nil
}

func buildIntegrator(name string, s *scene.Scene, maxBounces int) (integrator.Integrator, error) {
	switch name {
	case "bdpt":
		return integrator.NewRecursiveBDPT(s, maxBounces)
	case "pathtrace":
		return integrator.NewUnidirectionalPathTracer(maxBounces), nil
	case "forward":
		return integrator.NewForwardReflectance(vecmath.NewVec3(0, 0, -5)), nil
	case "depth":
		return integrator.NewDepthVisualizer(), nil
	default:
		return nil, fmt.Errorf("lumen: unsupported integrator %q (want bdpt, pathtrace, forward, or depth)", name)
	}
}

// toImage tone-maps (Reinhard) and sRGB-encodes the accumulated
// linear buffer into an 8-bit RGBA image ready for PNG encoding.
func toImage(buf *render.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.At(x, y)
			r := postprocess.EncodeSRGB(postprocess.ReinhardToneMap(c.X))
			g := postprocess.EncodeSRGB(postprocess.ReinhardToneMap(c.Y))
			b := postprocess.EncodeSRGB(postprocess.ReinhardToneMap(c.Z))
			img.SetRGBA(x, y, color.RGBA{
				R: to8Bit(r),
				G: to8Bit(g),
				B: to8Bit(b),
				A: 255,
			})
		}
	}
	return img
}

func to8Bit(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

// resizeImage scales img by factor using a bilinear filter, the
// ecosystem's standard image-scaling primitive
// (golang.org/x/image/draw) in place of hand-rolled nearest-neighbor
// sampling.
func resizeImage(img *image.RGBA, factor float64) *image.RGBA {
	bounds := img.Bounds()
	newWidth := int(float64(bounds.Dx())*factor + 0.5)
	newHeight := int(float64(bounds.Dy())*factor + 0.5)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
