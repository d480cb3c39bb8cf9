// Package render distributes sample-level Monte Carlo work across a
// worker pool and accumulates the results into a pixel buffer. Each
// worker renders one full, independent pass of the frame; passes are
// summed and divided by the sample count on the coordinator,
// generalizing df07.../pkg/renderer/worker_pool.go's tile-based pool
// to whole-frame sample averaging.
package render

import "github.com/kestrel-render/lumen/pkg/vecmath"

// Buffer is a row-major grid of accumulated RGB radiance, one Vec3 per
// pixel.
type Buffer struct {
	Width, Height int
	Pixels        []vecmath.Vec3
}

// NewBuffer allocates a zeroed buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Pixels: make([]vecmath.Vec3, width*height)}
}

func (b *Buffer) index(x, y int) int { return y*b.Width + x }

// At returns the accumulated color at (x, y).
func (b *Buffer) At(x, y int) vecmath.Vec3 { return b.Pixels[b.index(x, y)] }

// Set overwrites the color at (x, y).
func (b *Buffer) Set(x, y int, c vecmath.Vec3) { b.Pixels[b.index(x, y)] = c }

// addInPlace adds another buffer's pixels into this one. The two
// buffers must share dimensions.
func (b *Buffer) addInPlace(o *Buffer) {
	for i := range b.Pixels {
		b.Pixels[i] = b.Pixels[i].Add(o.Pixels[i])
	}
}

// scaleInPlace multiplies every pixel by s.
func (b *Buffer) scaleInPlace(s float64) {
	for i := range b.Pixels {
		b.Pixels[i] = b.Pixels[i].Multiply(s)
	}
}
