package ras2tin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportTIN() *TIN {
	return &TIN{
		Vertices: []Vertex{
			{ID: 0, X: 0, Y: 0, Z: 1},
			{ID: 1, X: 10, Y: 0, Z: 2},
			{ID: 2, X: 10, Y: 10, Z: 3},
			{ID: 3, X: 0, Y: 10, Z: 4},
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, exportTIN()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "v 0 0 1", lines[0])
	assert.Equal(t, "f 1 2 3", lines[4], "obj faces are 1-based")
	assert.Equal(t, "f 1 3 4", lines[5])
}

func TestToGeoJSON(t *testing.T) {
	fc := ToGeoJSON(exportTIN())
	require.Len(t, fc.Features, 2)
	assert.InDelta(t, 2.0, fc.Features[0].Properties["z"], 1e-12)
	assert.InDelta(t, 3.0, fc.Features[1].Properties["z"], 1e-12)
}

func TestWriteGeoJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, exportTIN()))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	ring := fc.Features[0].Geometry.Bound()
	assert.Equal(t, 0.0, ring.Min.X())
	assert.Equal(t, 10.0, ring.Max.Y())
}
