package ras2tin

// The triangulation stores vertices and triangles in dense arenas addressed
// by stable integer identifiers. Neighbor references are identifiers, never
// pointers, and -1 marks a boundary edge. Triangle slots are not recycled:
// a destroyed triangle keeps its slot with alive=false, which makes stale
// priority-queue entries trivially detectable.

// Vertex is an immutable mesh point. Positions never move after insertion.
type Vertex struct {
	ID      int
	X, Y, Z float64
}

type triangle struct {
	// v holds the vertex ids in counterclockwise order; n[i] is the
	// neighbor across the edge v[i]->v[i+1].
	v     [3]int
	n     [3]int
	alive bool
	inert bool
}

// Mesh is an incrementally refined triangulation covering the raster
// footprint. It is not safe for concurrent mutation.
type Mesh struct {
	verts []Vertex
	tris  []triangle
	live  int
	stats *Stats

	// snapTol2 is the squared distance below which an inserted point is
	// treated as coincident with an existing vertex.
	snapTol2 float64
	hint     int
}

// newMesh seeds the triangulation with two triangles over the quad
// c0..c3 (given in ring order). Collinear corners are rejected.
func newMesh(corners [4]Vertex, snapTol float64, stats *Stats) (*Mesh, error) {
	m := &Mesh{
		verts:    make([]Vertex, 0, 64),
		tris:     make([]triangle, 0, 128),
		stats:    stats,
		snapTol2: snapTol * snapTol,
	}
	// Normalize the ring to counterclockwise winding.
	if orient2d(corners[0].X, corners[0].Y, corners[1].X, corners[1].Y, corners[2].X, corners[2].Y, stats) < 0 {
		corners[1], corners[3] = corners[3], corners[1]
	}
	for i := range corners {
		m.addVertex(corners[i].X, corners[i].Y, corners[i].Z)
	}
	if orient2d(m.verts[0].X, m.verts[0].Y, m.verts[1].X, m.verts[1].Y, m.verts[2].X, m.verts[2].Y, stats) <= 0 ||
		orient2d(m.verts[0].X, m.verts[0].Y, m.verts[2].X, m.verts[2].Y, m.verts[3].X, m.verts[3].Y, stats) <= 0 {
		return nil, &InvalidRasterError{Reason: "degenerate seed corners"}
	}
	a := m.addTriangle([3]int{0, 1, 2}, [3]int{-1, -1, -1})
	b := m.addTriangle([3]int{0, 2, 3}, [3]int{-1, -1, -1})
	m.tris[a].n = [3]int{-1, -1, b}
	m.tris[b].n = [3]int{a, -1, -1}
	return m, nil
}

func (m *Mesh) addVertex(x, y, z float64) int {
	id := len(m.verts)
	m.verts = append(m.verts, Vertex{ID: id, X: x, Y: y, Z: z})
	return id
}

func (m *Mesh) addTriangle(v [3]int, n [3]int) int {
	id := len(m.tris)
	m.tris = append(m.tris, triangle{v: v, n: n, alive: true})
	m.live++
	return id
}

func (m *Mesh) kill(t int) {
	if m.tris[t].alive {
		m.tris[t].alive = false
		m.live--
	}
}

// replaceNeighbor rewires the back-reference of triangle t from old to nw.
func (m *Mesh) replaceNeighbor(t, old, nw int) {
	if t < 0 {
		return
	}
	for i := 0; i < 3; i++ {
		if m.tris[t].n[i] == old {
			m.tris[t].n[i] = nw
			return
		}
	}
}

// VertexCount returns the number of inserted vertices.
func (m *Mesh) VertexCount() int { return len(m.verts) }

// TriangleCount returns the number of live triangles.
func (m *Mesh) TriangleCount() int { return m.live }

// Insert adds a vertex inside triangle t, splitting it into three triangles,
// or into four (two per side) when the point falls on an interior edge.
// Points on a boundary edge split the single triangle into two. A point
// coinciding with an existing vertex returns *DegenerateInsertionError and
// leaves the mesh untouched.
func (m *Mesh) Insert(x, y, z float64, t int) ([]int, error) {
	tri := &m.tris[t]
	if !tri.alive {
		return nil, &DegenerateInsertionError{X: x, Y: y}
	}
	for _, vi := range tri.v {
		dx := m.verts[vi].X - x
		dy := m.verts[vi].Y - y
		if dx*dx+dy*dy <= m.snapTol2 {
			return nil, &DegenerateInsertionError{X: x, Y: y}
		}
	}
	onEdge := -1
	for i := 0; i < 3; i++ {
		a := m.verts[tri.v[i]]
		b := m.verts[tri.v[(i+1)%3]]
		s := orient2d(a.X, a.Y, b.X, b.Y, x, y, m.stats)
		if s < 0 {
			// Outside the supplied triangle; refuse rather than
			// corrupt topology.
			return nil, &DegenerateInsertionError{X: x, Y: y}
		}
		if s == 0 {
			onEdge = i
		}
	}
	if onEdge >= 0 {
		return m.insertOnEdge(x, y, z, t, onEdge), nil
	}
	return m.insertInterior(x, y, z, t), nil
}

func (m *Mesh) insertInterior(x, y, z float64, t int) []int {
	p := m.addVertex(x, y, z)
	old := m.tris[t]
	a, b, c := old.v[0], old.v[1], old.v[2]
	nab, nbc, nca := old.n[0], old.n[1], old.n[2]
	m.kill(t)

	t0 := m.addTriangle([3]int{a, b, p}, [3]int{nab, -1, -1})
	t1 := m.addTriangle([3]int{b, c, p}, [3]int{nbc, -1, -1})
	t2 := m.addTriangle([3]int{c, a, p}, [3]int{nca, -1, -1})
	m.tris[t0].n[1], m.tris[t0].n[2] = t1, t2
	m.tris[t1].n[1], m.tris[t1].n[2] = t2, t0
	m.tris[t2].n[1], m.tris[t2].n[2] = t0, t1
	m.replaceNeighbor(nab, t, t0)
	m.replaceNeighbor(nbc, t, t1)
	m.replaceNeighbor(nca, t, t2)
	return []int{t0, t1, t2}
}

func (m *Mesh) insertOnEdge(x, y, z float64, t, i int) []int {
	p := m.addVertex(x, y, z)
	old := m.tris[t]
	a := old.v[i]
	b := old.v[(i+1)%3]
	c := old.v[(i+2)%3]
	u := old.n[i]
	nbc := old.n[(i+1)%3]
	nca := old.n[(i+2)%3]
	m.kill(t)

	t0 := m.addTriangle([3]int{a, p, c}, [3]int{-1, -1, nca})
	t1 := m.addTriangle([3]int{p, b, c}, [3]int{-1, nbc, -1})
	m.tris[t0].n[1] = t1
	m.tris[t1].n[2] = t0
	m.replaceNeighbor(nca, t, t0)
	m.replaceNeighbor(nbc, t, t1)
	if u < 0 {
		return []int{t0, t1}
	}

	// The neighbor shares the split edge b->a; split it the same way.
	un := m.tris[u]
	j := 0
	for ; j < 3; j++ {
		if un.v[j] == b && un.v[(j+1)%3] == a {
			break
		}
	}
	d := un.v[(j+2)%3]
	nad := un.n[(j+1)%3]
	ndb := un.n[(j+2)%3]
	m.kill(u)

	t2 := m.addTriangle([3]int{b, p, d}, [3]int{t1, -1, ndb})
	t3 := m.addTriangle([3]int{p, a, d}, [3]int{t0, nad, -1})
	m.tris[t2].n[1] = t3
	m.tris[t3].n[2] = t2
	m.tris[t0].n[0] = t3
	m.tris[t1].n[0] = t2
	m.replaceNeighbor(ndb, u, t2)
	m.replaceNeighbor(nad, u, t3)
	return []int{t0, t1, t2, t3}
}

// flip replaces the edge v[i]->v[i+1] of triangle t and its twin in the
// neighboring triangle with the opposite diagonal of their shared quad.
// It refuses when the edge is on the boundary or the resulting pair would
// be degenerate, returning ok=false.
func (m *Mesh) flip(t, i int) (created [2]int, ok bool) {
	old := m.tris[t]
	u := old.n[i]
	if u < 0 {
		return created, false
	}
	a := old.v[i]
	b := old.v[(i+1)%3]
	c := old.v[(i+2)%3]
	nbc := old.n[(i+1)%3]
	nca := old.n[(i+2)%3]

	un := m.tris[u]
	j := 0
	for ; j < 3; j++ {
		if un.v[j] == b && un.v[(j+1)%3] == a {
			break
		}
	}
	d := un.v[(j+2)%3]
	nad := un.n[(j+1)%3]
	ndb := un.n[(j+2)%3]

	va, vc, vd := m.verts[a], m.verts[c], m.verts[d]
	vb := m.verts[b]
	if orient2d(va.X, va.Y, vd.X, vd.Y, vc.X, vc.Y, m.stats) <= 0 ||
		orient2d(vd.X, vd.Y, vb.X, vb.Y, vc.X, vc.Y, m.stats) <= 0 {
		return created, false
	}

	m.kill(t)
	m.kill(u)
	t0 := m.addTriangle([3]int{a, d, c}, [3]int{nad, -1, nca})
	t1 := m.addTriangle([3]int{d, b, c}, [3]int{ndb, nbc, -1})
	m.tris[t0].n[1] = t1
	m.tris[t1].n[2] = t0
	m.replaceNeighbor(nad, u, t0)
	m.replaceNeighbor(nca, t, t0)
	m.replaceNeighbor(ndb, u, t1)
	m.replaceNeighbor(nbc, t, t1)
	if m.stats != nil {
		m.stats.Flips++
	}
	return [2]int{t0, t1}, true
}

// locate walks from the last known triangle toward (x, y) using orientation
// tests and returns the containing triangle. Points outside the footprint
// resolve to the boundary triangle the walk exits through.
func (m *Mesh) locate(x, y float64) int {
	t := m.hint
	if t < 0 || t >= len(m.tris) || !m.tris[t].alive {
		t = -1
		for i := len(m.tris) - 1; i >= 0; i-- {
			if m.tris[i].alive {
				t = i
				break
			}
		}
		if t < 0 {
			return -1
		}
	}
	for steps := 0; steps <= 3*len(m.tris); steps++ {
		next := -1
		for i := 0; i < 3; i++ {
			a := m.verts[m.tris[t].v[i]]
			b := m.verts[m.tris[t].v[(i+1)%3]]
			if orient2d(a.X, a.Y, b.X, b.Y, x, y, m.stats) < 0 {
				if m.tris[t].n[i] >= 0 {
					next = m.tris[t].n[i]
					break
				}
			}
		}
		if next < 0 {
			m.hint = t
			return t
		}
		t = next
	}
	m.hint = t
	return t
}
