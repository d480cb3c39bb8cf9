package render

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kestrel-render/lumen/pkg/camera"
	"github.com/kestrel-render/lumen/pkg/integrator"
	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Options configures one render invocation.
type Options struct {
	// Samples is the number of independent full-frame passes to
	// average. Defaults to 1 if non-positive.
	Samples int
	// Workers caps concurrent passes. Defaults to runtime.NumCPU()
	// if non-positive.
	Workers int
	// Seed derives each pass's RNG as Seed+passIndex, making a render
	// reproducible for a fixed sample count regardless of worker count.
	Seed int64
}

// Stats summarizes a completed render.
type Stats struct {
	Samples int
	Workers int
	Elapsed time.Duration
}

// Render draws Options.Samples independent full-frame passes through
// integ, distributed across Options.Workers goroutines by an
// errgroup.Group with a concurrency limit, and averages them into one
// Buffer: N independent full renders averaged, not N samples
// multiplexed within one render. A non-finite per-pixel sample is
// replaced with black before accumulation.
func Render(ctx context.Context, cam *camera.Camera, s *scene.Scene, integ integrator.Integrator, opts Options) (*Buffer, Stats, error) {
	start := time.Now()

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	samples := opts.Samples
	if samples <= 0 {
		samples = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	total := NewBuffer(cam.Width, cam.Height)
	var mu sync.Mutex

	for i := 0; i < samples; i++ {
		passIndex := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(opts.Seed + int64(passIndex)))
			pass := renderPass(cam, s, integ, rng)

			mu.Lock()
			total.addInPlace(pass)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	total.scaleInPlace(1.0 / float64(samples))

	return total, Stats{Samples: samples, Workers: workers, Elapsed: time.Since(start)}, nil
}

// renderPass renders one full, independent frame: one camera ray per
// pixel, one integrator sample per ray.
func renderPass(cam *camera.Camera, s *scene.Scene, integ integrator.Integrator, rng *rand.Rand) *Buffer {
	buf := NewBuffer(cam.Width, cam.Height)
	for y := 0; y < cam.Height; y++ {
		for x := 0; x < cam.Width; x++ {
			ray := cam.GetRay(x, y, rng)
			c := integ.Render(ray, s, rng)
			if !c.IsFinite() {
				c = vecmath.Vec3{}
			}
			buf.Set(x, y, c)
		}
	}
	return buf
}
