package ras2tin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadMesh(t *testing.T) *Mesh {
	t.Helper()
	corners := [4]Vertex{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 10, Y: 10, Z: 0},
		{X: 0, Y: 10, Z: 0},
	}
	m, err := newMesh(corners, 1e-9, &Stats{})
	require.NoError(t, err)
	return m
}

// checkAdjacency asserts the structural invariants: symmetric neighbor
// references and every edge shared by exactly one or two live triangles.
func checkAdjacency(t *testing.T, m *Mesh) {
	t.Helper()
	edges := map[[2]int]int{}
	for i := range m.tris {
		if !m.tris[i].alive {
			continue
		}
		tr := m.tris[i]
		for e := 0; e < 3; e++ {
			a, b := tr.v[e], tr.v[(e+1)%3]
			n := tr.n[e]
			if n >= 0 {
				require.True(t, m.tris[n].alive, "neighbor of a live triangle must be live")
				back := false
				for k := 0; k < 3; k++ {
					if m.tris[n].v[k] == b && m.tris[n].v[(k+1)%3] == a {
						back = m.tris[n].n[k] == i
					}
				}
				assert.True(t, back, "adjacency must be symmetric (tri %d edge %d)", i, e)
			}
			key := [2]int{a, b}
			if a > b {
				key = [2]int{b, a}
			}
			edges[key]++
		}
	}
	for key, count := range edges {
		assert.LessOrEqual(t, count, 2, "edge %v shared by more than two triangles", key)
	}
}

func TestSeedMesh(t *testing.T) {
	m := quadMesh(t)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.TriangleCount())
	checkAdjacency(t, m)
}

func TestSeedMeshCollinear(t *testing.T) {
	corners := [4]Vertex{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3},
	}
	_, err := newMesh(corners, 1e-9, &Stats{})
	var invalid *InvalidRasterError
	assert.ErrorAs(t, err, &invalid)
}

func TestInsertInterior(t *testing.T) {
	m := quadMesh(t)
	tri := m.locate(3, 2)
	created, err := m.Insert(3, 2, 7, tri)
	require.NoError(t, err)
	assert.Len(t, created, 3)
	assert.Equal(t, 5, m.VertexCount())
	assert.Equal(t, 4, m.TriangleCount())
	assert.False(t, m.tris[tri].alive, "split triangle must be destroyed")
	checkAdjacency(t, m)
}

func TestInsertOnInteriorEdge(t *testing.T) {
	m := quadMesh(t)
	// (5, 5) lies exactly on the seed diagonal shared by both triangles.
	tri := m.locate(5, 5)
	created, err := m.Insert(5, 5, 1, tri)
	require.NoError(t, err)
	assert.Len(t, created, 4)
	assert.Equal(t, 4, m.TriangleCount())
	checkAdjacency(t, m)
}

func TestInsertOnBoundaryEdge(t *testing.T) {
	m := quadMesh(t)
	tri := m.locate(5, 0)
	created, err := m.Insert(5, 0, 1, tri)
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, 3, m.TriangleCount())
	checkAdjacency(t, m)
}

func TestInsertDuplicateRejected(t *testing.T) {
	m := quadMesh(t)
	tri := m.locate(0, 0)
	_, err := m.Insert(0, 0, 5, tri)
	var degenerate *DegenerateInsertionError
	require.ErrorAs(t, err, &degenerate)
	// The rejected vertex must not corrupt the mesh.
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.TriangleCount())
	checkAdjacency(t, m)
}

func TestFlip(t *testing.T) {
	m := quadMesh(t)
	// Find the shared diagonal of the two seed triangles and flip it.
	var tri, edge int = -1, -1
	for i := range m.tris {
		for e := 0; e < 3; e++ {
			if m.tris[i].n[e] >= 0 {
				tri, edge = i, e
			}
		}
	}
	require.GreaterOrEqual(t, tri, 0)

	created, ok := m.flip(tri, edge)
	require.True(t, ok)
	assert.Equal(t, 2, m.TriangleCount())
	assert.True(t, m.tris[created[0]].alive)
	assert.True(t, m.tris[created[1]].alive)
	checkAdjacency(t, m)

	// The new diagonal connects the two corners the old one skipped.
	seen := map[int]bool{}
	for _, c := range created {
		for _, v := range m.tris[c].v {
			seen[v] = true
		}
	}
	assert.Len(t, seen, 4)
}

func TestLegalizeRestoresDelaunay(t *testing.T) {
	m := quadMesh(t)
	tri := m.locate(2, 2)
	created, err := m.Insert(2, 2, 0, tri)
	require.NoError(t, err)
	final := m.legalize(m.VertexCount()-1, created, 64)
	assert.NotEmpty(t, final)
	checkAdjacency(t, m)
	assertDelaunay(t, m)
}

// assertDelaunay checks the empty-circumcircle property for every live
// triangle against every other vertex.
func assertDelaunay(t *testing.T, m *Mesh) {
	t.Helper()
	for i := range m.tris {
		if !m.tris[i].alive {
			continue
		}
		a := m.verts[m.tris[i].v[0]]
		b := m.verts[m.tris[i].v[1]]
		c := m.verts[m.tris[i].v[2]]
		for _, v := range m.verts {
			if v.ID == a.ID || v.ID == b.ID || v.ID == c.ID {
				continue
			}
			s := inCircle(a.X, a.Y, b.X, b.Y, c.X, c.Y, v.X, v.Y, nil)
			assert.LessOrEqual(t, s, 1e-9, "vertex %d inside circumcircle of triangle %d", v.ID, i)
		}
	}
}
