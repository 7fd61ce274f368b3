package ras2tin

// legalize restores the Delaunay property around a freshly inserted vertex.
// Every triangle in the cascade contains the new vertex, so exactly one edge
// per triangle (the one opposite the vertex) needs the incircle test. The
// cascade is an explicit worklist rather than recursion, which bounds stack
// depth and makes the flip budget trivial to enforce.
//
// Under exact predicates each flip strictly increases the minimum angle of
// the affected quad, so the cascade terminates on its own; maxFlips is the
// escape valve for finite-precision edge cases and degrades the result to
// best-effort Delaunay instead of looping.
func (m *Mesh) legalize(p int, created []int, maxFlips int) []int {
	work := append([]int(nil), created...)
	out := append([]int(nil), created...)
	flips := 0
	for len(work) > 0 {
		t := work[len(work)-1]
		work = work[:len(work)-1]
		if !m.tris[t].alive {
			continue
		}
		k := -1
		for i := 0; i < 3; i++ {
			if m.tris[t].v[i] == p {
				k = i
				break
			}
		}
		if k < 0 {
			continue
		}
		e := (k + 1) % 3
		u := m.tris[t].n[e]
		if u < 0 {
			continue
		}
		// Far vertex of the neighbor across the tested edge.
		a := m.tris[t].v[e]
		b := m.tris[t].v[(e+1)%3]
		d := -1
		for i := 0; i < 3; i++ {
			if m.tris[u].v[i] == b && m.tris[u].v[(i+1)%3] == a {
				d = m.tris[u].v[(i+2)%3]
				break
			}
		}
		if d < 0 {
			continue
		}
		v0 := m.verts[m.tris[t].v[0]]
		v1 := m.verts[m.tris[t].v[1]]
		v2 := m.verts[m.tris[t].v[2]]
		vd := m.verts[d]
		if inCircle(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y, vd.X, vd.Y, m.stats) <= 0 {
			continue
		}
		if maxFlips > 0 && flips >= maxFlips {
			if m.stats != nil {
				m.stats.FlipBudgetHits++
			}
			break
		}
		nw, ok := m.flip(t, e)
		if !ok {
			continue
		}
		flips++
		work = append(work, nw[0], nw[1])
		out = append(out, nw[0], nw[1])
	}
	// Keep only triangles that survived the cascade.
	live := out[:0]
	for _, t := range out {
		if m.tris[t].alive {
			live = append(live, t)
		}
	}
	return live
}
