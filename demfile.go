package ras2tin

import (
	"image"
	_ "image/png"
	"math"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/tiff"
)

// RasterFromImage treats a grayscale image as an elevation grid, mapping
// luminance linearly onto [zMin, zMax]. 16-bit sources keep their full
// precision. Fully transparent pixels become nodata.
func RasterFromImage(img image.Image, zMin, zMax float64) (*Raster, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]float64, w*h)
	span := zMax - zMin
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				data[y*w+x] = math.NaN()
				continue
			}
			lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			data[y*w+x] = zMin + span*lum/65535.0
		}
	}
	return NewRaster(data, w, h, 1, 1, 0, 0, math.NaN())
}

// LoadRaster reads a grayscale PNG or TIFF elevation file. The luminance
// range is mapped onto [zMin, zMax].
func LoadRaster(path string, zMin, zMax float64) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening raster %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding raster %s", path)
	}
	return RasterFromImage(img, zMin, zMax)
}
