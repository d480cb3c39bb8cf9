package postprocess

import (
	"sort"

	"github.com/kestrel-render/lumen/pkg/render"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// MedianFilter returns a new buffer where each pixel is replaced by
// the per-channel median of its (2*radius+1)^2 neighborhood, clamped
// to the buffer edges. Bidirectional path tracing occasionally
// produces isolated firefly pixels from a rare high-contribution
// connection; a small median pass removes them without blurring the
// rest of the image the way a mean/Gaussian blur would.
func MedianFilter(buf *render.Buffer, radius int) *render.Buffer {
	if radius <= 0 {
		out := render.NewBuffer(buf.Width, buf.Height)
		copy(out.Pixels, buf.Pixels)
		return out
	}

	out := render.NewBuffer(buf.Width, buf.Height)
	windowSide := 2*radius + 1
	window := windowSide * windowSide
	rs := make([]float64, 0, window)
	gs := make([]float64, 0, window)
	bs := make([]float64, 0, window)

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			rs = rs[:0]
			gs = gs[:0]
			bs = bs[:0]

			for dy := -radius; dy <= radius; dy++ {
				ny := clampInt(y+dy, 0, buf.Height-1)
				for dx := -radius; dx <= radius; dx++ {
					nx := clampInt(x+dx, 0, buf.Width-1)
					c := buf.At(nx, ny)
					rs = append(rs, c.X)
					gs = append(gs, c.Y)
					bs = append(bs, c.Z)
				}
			}

			out.Set(x, y, vecmath.NewVec3(median(rs), median(gs), median(bs)))
		}
	}
	return out
}

func median(xs []float64) float64 {
	sort.Float64s(xs)
	return xs[len(xs)/2]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeDepth rescales a single-channel depth buffer (as produced
// by integrator.DepthVisualizer, where X, Y, and Z all hold the raw
// hit distance, zero on a miss) to [0,1] using the whole frame's own
// min and max over its hit pixels, the normalization
// original_source/src/renderer/depth_renderer.rs's
// DepthRenderMode::Normalized applies once a full pass has visibility
// into every pixel. Miss pixels are left at zero in the min/max scan,
// matching the original, then rescaled through the same formula as
// every other pixel — so a miss can come out brighter than the
// nearest hit rather than clamped to black. A frame with no hits at
// all normalizes to zero everywhere rather than dividing by a zero
// range.
func NormalizeDepth(buf *render.Buffer) *render.Buffer {
	var minDepth, maxDepth float64
	hasHit := false
	for _, p := range buf.Pixels {
		if p.X == 0 {
			continue
		}
		if !hasHit || p.X < minDepth {
			minDepth = p.X
		}
		if !hasHit || p.X > maxDepth {
			maxDepth = p.X
		}
		hasHit = true
	}

	out := render.NewBuffer(buf.Width, buf.Height)
	span := maxDepth - minDepth
	if !hasHit || span == 0 {
		return out
	}
	for i, p := range buf.Pixels {
		depth := 1 - (p.X-minDepth)/span
		out.Pixels[i] = vecmath.NewVec3(depth, depth, depth)
	}
	return out
}
