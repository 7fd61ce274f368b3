package ras2tin

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r, err := GenerateDEM(24, 24, 5, DEMOptions{})
	require.NoError(t, err)
	tin, err := (&Processor{MaxError: 0, MaxPoints: 30}).Run(context.Background(), r)
	require.NoError(t, err)

	rd := &Renderer{Width: 120, Height: 120, Wireframe: WithWireframe}
	img := rd.Render(tin)
	require.NotNil(t, img)
	bounds := img.Bounds()
	assert.Equal(t, 120, bounds.Dx())
	assert.Equal(t, 120, bounds.Dy())

	// At least one pixel must differ from the background.
	painted := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !painted; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.At(x, y) != img.At(bounds.Min.X, bounds.Min.Y) {
				painted = true
				break
			}
		}
	}
	assert.True(t, painted)
}

func TestElevationColor(t *testing.T) {
	low := elevationColor(0)
	high := elevationColor(1)
	lr, _, lb, _ := low.RGBA()
	hr, _, hb, _ := high.RGBA()
	assert.Greater(t, lb, lr, "low elevations render blue")
	assert.Greater(t, hr, hb, "high elevations render red")
	assert.IsType(t, color.RGBA{}, low)
}
