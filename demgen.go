package ras2tin

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// DEMOptions controls synthetic terrain generation.
type DEMOptions struct {
	// Alpha is the noise smoothing factor (default 2).
	Alpha float64
	// Beta is the noise frequency factor (default 2).
	Beta float64
	// Octaves is the number of noise octaves (default 3).
	Octaves int
	// Scale is the noise sampling scale in cells (default 64).
	Scale float64
	// ZMin, ZMax bound the generated elevations (default 0..1000).
	ZMin, ZMax float64
}

// GenerateDEM produces a synthetic Perlin-noise elevation raster. Useful
// for examples, benchmarks, and as a stand-in when no real DEM is at hand.
func GenerateDEM(width, height int, seed int64, opts DEMOptions) (*Raster, error) {
	if opts.Alpha <= 0 {
		opts.Alpha = 2
	}
	if opts.Beta <= 0 {
		opts.Beta = 2
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 3
	}
	if opts.Scale <= 0 {
		opts.Scale = 64
	}
	if opts.ZMax == opts.ZMin {
		opts.ZMin, opts.ZMax = 0, 1000
	}

	noise := perlin.NewPerlin(opts.Alpha, opts.Beta, int32(opts.Octaves), seed)
	data := make([]float64, width*height)
	span := opts.ZMax - opts.ZMin
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			// Noise2D returns roughly [-1, 1]; remap to [ZMin, ZMax].
			n := noise.Noise2D(float64(col)/opts.Scale, float64(row)/opts.Scale)
			data[row*width+col] = opts.ZMin + span*(n+1)/2
		}
	}
	return NewRaster(data, width, height, 1, 1, 0, 0, math.NaN())
}
