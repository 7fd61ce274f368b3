package ras2tin

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterFromImageGray16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 2))
	img.SetGray16(0, 0, color.Gray16{Y: 0})
	img.SetGray16(1, 0, color.Gray16{Y: 0xffff})
	img.SetGray16(0, 1, color.Gray16{Y: 0x7fff})
	img.SetGray16(1, 1, color.Gray16{Y: 0xffff})

	r, err := RasterFromImage(img, 0, 100)
	require.NoError(t, err)

	z, ok := r.ElevationAt(0, 0)
	require.True(t, ok)
	assert.InDelta(t, 0, z, 1e-9)
	z, _ = r.ElevationAt(0, 1)
	assert.InDelta(t, 100, z, 1e-9)
	z, _ = r.ElevationAt(1, 0)
	assert.InDelta(t, 50, z, 0.01)
}

func TestRasterFromImageTransparentIsNodata(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{A: 0})
	img.SetNRGBA(0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 0, G: 0, B: 0, A: 255})

	r, err := RasterFromImage(img, 0, 100)
	require.NoError(t, err)

	_, ok := r.ElevationAt(0, 1)
	assert.False(t, ok, "fully transparent pixels are nodata")
	_, ok = r.ElevationAt(0, 0)
	assert.True(t, ok)
}

func TestLoadRasterMissingFile(t *testing.T) {
	_, err := LoadRaster("does-not-exist.png", 0, 100)
	assert.Error(t, err)
}
