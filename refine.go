package ras2tin

import (
	"container/heap"
	"context"
	"errors"
)

// candidateHeap orders candidates by descending error; equal errors fall
// back to (row, col) order so runs are reproducible.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].err != h[j].err {
		return h[i].err > h[j].err
	}
	if h[i].row != h[j].row {
		return h[i].row < h[j].row
	}
	if h[i].col != h[j].col {
		return h[i].col < h[j].col
	}
	return h[i].tri < h[j].tri
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// Run converts the raster into a TIN by greedy error-driven refinement:
// seed the mesh, evaluate every triangle, then repeatedly insert the raster
// cell with the worst deviation until the tolerance, the point budget, or
// the raster itself is exhausted. The returned TIN is well formed even when
// refinement stops at the seed. Cancellation is checked between iterations
// only, so a cancelled run still holds a structurally valid, legal mesh.
func (p *Processor) Run(ctx context.Context, r *Raster) (*TIN, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &InvalidRasterError{Reason: "nil raster"}
	}
	stats := &Stats{}
	mesh, err := seedMesh(r, stats)
	if err != nil {
		return nil, err
	}
	if err := p.seedExtra(mesh, r, stats); err != nil {
		return nil, err
	}

	// Initial generation: no insertion pending, so triangle evaluation is
	// independent and can fan out over workers.
	live := make([]int, 0, mesh.live)
	for i := range mesh.tris {
		if mesh.tris[i].alive {
			live = append(live, i)
		}
	}
	queue := candidateHeap(evaluateAll(mesh, r, live, p.Workers))
	heap.Init(&queue)

	reason := QueueExhausted
	for {
		select {
		case <-ctx.Done():
			reason = Cancelled
		default:
		}
		if reason == Cancelled {
			break
		}
		if p.MaxPoints > 0 && mesh.VertexCount() >= p.MaxPoints {
			reason = BudgetReached
			break
		}
		// Lazily evict entries whose triangle died in an earlier cascade.
		var cand candidate
		stale := true
		for stale && queue.Len() > 0 {
			cand = heap.Pop(&queue).(candidate)
			stale = !mesh.tris[cand.tri].alive || mesh.tris[cand.tri].inert
		}
		if stale {
			reason = QueueExhausted
			break
		}
		if p.hasTolerance() && cand.err <= p.MaxError {
			reason = ToleranceReached
			// The popped candidate is still the worst unresolved deviation;
			// put it back so the final error scan sees it.
			heap.Push(&queue, cand)
			break
		}

		z, ok := r.ElevationAt(cand.row, cand.col)
		if !ok {
			continue
		}
		x, y := r.CellCenter(cand.row, cand.col)
		created, err := mesh.Insert(x, y, z, cand.tri)
		if err != nil {
			var degenerate *DegenerateInsertionError
			if errors.As(err, &degenerate) {
				stats.DegenerateDrops++
				mesh.tris[cand.tri].inert = true
				continue
			}
			return nil, err
		}
		stats.Insertions++
		vertex := mesh.VertexCount() - 1
		for _, t := range mesh.legalize(vertex, created, p.maxFlips()) {
			if c, ok := evaluate(mesh, r, t); ok {
				heap.Push(&queue, c)
			} else {
				mesh.tris[t].inert = true
			}
		}
	}

	tin := mesh.Compact()
	tin.Reason = reason
	tin.Stats = *stats
	for _, c := range queue {
		if mesh.tris[c.tri].alive && !mesh.tris[c.tri].inert && c.err > tin.MaxError {
			tin.MaxError = c.err
		}
	}
	return tin, nil
}

// seedExtra inserts the strategy-specific seed points before refinement.
// Duplicate or masked points are skipped; the point budget is respected.
func (p *Processor) seedExtra(m *Mesh, r *Raster, stats *Stats) error {
	var cells [][2]int
	switch p.SeedStrategy {
	case SeedCornersOnly:
		return nil
	case SeedCornersGrid:
		step := p.gridStep()
		for row := 0; row < r.Height; row += step {
			for col := 0; col < r.Width; col += step {
				cells = append(cells, [2]int{row, col})
			}
		}
	case SeedVIP:
		sig := Significance(r)
		cells = SelectVIP(r, sig, p.vipRatio(), p.vipBlocks())
	}
	for _, rc := range cells {
		if p.MaxPoints > 0 && m.VertexCount() >= p.MaxPoints {
			return nil
		}
		z, ok := r.ElevationAt(rc[0], rc[1])
		if !ok {
			continue
		}
		x, y := r.CellCenter(rc[0], rc[1])
		t := m.locate(x, y)
		if t < 0 {
			continue
		}
		created, err := m.Insert(x, y, z, t)
		if err != nil {
			var degenerate *DegenerateInsertionError
			if errors.As(err, &degenerate) {
				stats.DegenerateDrops++
				continue
			}
			return err
		}
		stats.Insertions++
		m.legalize(m.VertexCount()-1, created, p.maxFlips())
	}
	return nil
}
