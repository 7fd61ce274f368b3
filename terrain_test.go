package ras2tin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlopeAspectFlat(t *testing.T) {
	tin := &TIN{
		Vertices: []Vertex{
			{ID: 0, X: 0, Y: 0, Z: 7},
			{ID: 1, X: 1, Y: 0, Z: 7},
			{ID: 2, X: 0, Y: 1, Z: 7},
		},
		Triangles: [][3]int{{0, 1, 2}},
	}
	assert.InDelta(t, 0, tin.Slope()[0], 1e-12)
	assert.InDelta(t, 0, tin.Aspect()[0], 1e-12)
}

func TestSlopeAspectRamp(t *testing.T) {
	// z = x: a 45 degree slope rising to the east, so the downslope
	// direction points west.
	tin := &TIN{
		Vertices: []Vertex{
			{ID: 0, X: 0, Y: 0, Z: 0},
			{ID: 1, X: 1, Y: 0, Z: 1},
			{ID: 2, X: 0, Y: 1, Z: 0},
		},
		Triangles: [][3]int{{0, 1, 2}},
	}
	assert.InDelta(t, 45, tin.Slope()[0], 1e-9)
	assert.InDelta(t, 270, tin.Aspect()[0], 1e-9)
}

func TestAspectWindingInvariant(t *testing.T) {
	// Reversing the vertex order flips the raw normal but must not change
	// the reported aspect.
	cw := &TIN{
		Vertices: []Vertex{
			{ID: 0, X: 0, Y: 0, Z: 0},
			{ID: 1, X: 1, Y: 0, Z: 1},
			{ID: 2, X: 0, Y: 1, Z: 0},
		},
		Triangles: [][3]int{{0, 2, 1}},
	}
	assert.InDelta(t, 270, cw.Aspect()[0], 1e-9)
}
