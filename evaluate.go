package ras2tin

import (
	"math"
	"runtime"
	"sync"

	"github.com/golang/geo/r2"
)

// candidate is the worst raster cell under a triangle and its vertical
// deviation from the triangle's supporting plane. Candidates are scheduling
// artifacts: one per live triangle, dead with it.
type candidate struct {
	tri      int
	row, col int
	err      float64
}

// evaluate scans every raster cell whose center falls inside the 2D
// footprint of triangle t and returns the one deviating most from the
// triangle plane. The scan is row-major with a strict greater-than
// comparison, so ties resolve to the smallest (row, col) and repeated
// evaluation of an unchanged triangle is idempotent. ok is false when no
// valid cell lies inside the triangle: such a triangle is inert and is
// never queued again.
func evaluate(m *Mesh, r *Raster, t int) (c candidate, ok bool) {
	tr := m.tris[t]
	va := m.verts[tr.v[0]]
	vb := m.verts[tr.v[1]]
	vc := m.verts[tr.v[2]]

	bbox := r2.RectFromPoints(
		r2.Point{X: va.X, Y: va.Y},
		r2.Point{X: vb.X, Y: vb.Y},
		r2.Point{X: vc.X, Y: vc.Y},
	)
	r0, c0, r1, c1 := r.CellsWithin(bbox)

	// Twice the signed area; the seed normalizes winding to CCW so this is
	// positive for every live triangle.
	det := (vb.X-va.X)*(vc.Y-va.Y) - (vb.Y-va.Y)*(vc.X-va.X)
	if det == 0 {
		return c, false
	}
	// Cells exactly on a shared edge must belong to at least one of the two
	// triangles, so containment is epsilon-inclusive.
	eps := 1e-9 * math.Abs(det)

	c = candidate{tri: t, err: -1}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			z, valid := r.ElevationAt(row, col)
			if !valid {
				continue
			}
			px, py := r.CellCenter(row, col)
			wa := (vb.X-px)*(vc.Y-py) - (vb.Y-py)*(vc.X-px)
			wb := (vc.X-px)*(va.Y-py) - (vc.Y-py)*(va.X-px)
			wc := (va.X-px)*(vb.Y-py) - (va.Y-py)*(vb.X-px)
			if wa < -eps || wb < -eps || wc < -eps {
				continue
			}
			plane := (va.Z*wa + vb.Z*wb + vc.Z*wc) / det
			dev := math.Abs(z - plane)
			if dev > c.err {
				c.row, c.col, c.err = row, col, dev
			}
		}
	}
	if c.err < 0 {
		return c, false
	}
	return c, true
}

// evaluateAll computes candidates for a batch of triangles, spreading the
// work over the given number of goroutines. The raster is read-only and
// every result lands in its own slot, so no synchronization beyond the wait
// is needed. The refinement loop itself stays sequential; this pass is only
// worthwhile before the first insertion, when many triangles are pending.
func evaluateAll(m *Mesh, r *Raster, tris []int, workers int) []candidate {
	results := make([]candidate, len(tris))
	valid := make([]bool, len(tris))

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(tris) {
		workers = len(tris)
	}
	if workers <= 1 {
		for i, t := range tris {
			results[i], valid[i] = evaluate(m, r, t)
		}
	} else {
		var wg sync.WaitGroup
		chunk := (len(tris) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > len(tris) {
				hi = len(tris)
			}
			if lo >= hi {
				break
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					results[i], valid[i] = evaluate(m, r, tris[i])
				}
			}(lo, hi)
		}
		wg.Wait()
	}

	out := results[:0]
	for i := range results {
		if valid[i] {
			out = append(out, results[i])
		} else {
			m.tris[tris[i]].inert = true
		}
	}
	return out
}
