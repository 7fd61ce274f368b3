package ras2tin

import (
	"math"
)

// Seed strategies for the initial vertex set.
const (
	// SeedCornersOnly starts from the four raster corners alone.
	SeedCornersOnly = iota
	// SeedCornersGrid adds a regular grid of points every GridStep cells.
	SeedCornersGrid
	// SeedVIP adds the most significant cells per the Chen (1987) VIP
	// selection before refinement starts.
	SeedVIP
)

// Processor holds the refinement options.
type Processor struct {
	// MaxError is the vertical error tolerance. Refinement stops once the
	// worst remaining deviation drops to this value. Negative or +Inf
	// disables the tolerance bound, in which case MaxPoints must be set.
	MaxError float64
	// MaxPoints caps the vertex count, seed included. Zero or negative
	// means unlimited. Budget-reached termination takes precedence over
	// tolerance and is reported distinctly.
	MaxPoints int
	// SeedStrategy is one of SeedCornersOnly, SeedCornersGrid, SeedVIP.
	SeedStrategy int
	// GridStep is the cell stride for SeedCornersGrid (default 16).
	GridStep int
	// VIPRatio is the fraction of cells SeedVIP keeps (default 0.05).
	VIPRatio float64
	// VIPBlocks is the number of selection blocks for SeedVIP (default 4).
	VIPBlocks int
	// Workers bounds the goroutines used for the initial batch evaluation.
	// Zero picks GOMAXPROCS. The refinement loop itself is sequential.
	Workers int
	// MaxFlips caps the legalization cascade per insertion (default 64).
	MaxFlips int
}

// TerminationReason reports why a refinement run stopped.
type TerminationReason int

const (
	// ToleranceReached: the worst remaining deviation is within MaxError.
	ToleranceReached TerminationReason = iota
	// BudgetReached: the vertex count hit MaxPoints.
	BudgetReached
	// QueueExhausted: no candidate cells remain anywhere in the mesh.
	QueueExhausted
	// Cancelled: the context was cancelled between iterations. The mesh is
	// still structurally valid and Delaunay-legal.
	Cancelled
)

func (r TerminationReason) String() string {
	switch r {
	case ToleranceReached:
		return "tolerance reached"
	case BudgetReached:
		return "budget reached"
	case QueueExhausted:
		return "queue exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TIN is the refined mesh: the final vertex and triangle lists, ready for
// serialization by an external writer.
type TIN struct {
	Vertices  []Vertex
	Triangles [][3]int
	// Reason records how the run terminated.
	Reason TerminationReason
	// MaxError is the worst deviation still unresolved at termination.
	MaxError float64
	Stats    Stats
}

// Compact exports the live topology of the mesh as a TIN.
func (m *Mesh) Compact() *TIN {
	out := &TIN{
		Vertices:  append([]Vertex(nil), m.verts...),
		Triangles: make([][3]int, 0, m.live),
	}
	for i := range m.tris {
		if m.tris[i].alive {
			out.Triangles = append(out.Triangles, m.tris[i].v)
		}
	}
	return out
}

func (p *Processor) hasTolerance() bool {
	return p.MaxError >= 0 && !math.IsInf(p.MaxError, 1) && !math.IsNaN(p.MaxError)
}

func (p *Processor) validate() error {
	if !p.hasTolerance() && p.MaxPoints <= 0 {
		return &NonTerminatingConfigurationError{MaxError: p.MaxError, MaxPoints: p.MaxPoints}
	}
	if p.MaxPoints > 0 && p.MaxPoints < 4 {
		return &NonTerminatingConfigurationError{MaxError: p.MaxError, MaxPoints: p.MaxPoints}
	}
	return nil
}

func (p *Processor) gridStep() int {
	if p.GridStep > 0 {
		return p.GridStep
	}
	return 16
}

func (p *Processor) vipRatio() float64 {
	if p.VIPRatio > 0 {
		return p.VIPRatio
	}
	return 0.05
}

func (p *Processor) vipBlocks() int {
	if p.VIPBlocks > 0 {
		return p.VIPBlocks
	}
	return 4
}

func (p *Processor) maxFlips() int {
	if p.MaxFlips > 0 {
		return p.MaxFlips
	}
	return 64
}

// cornerZ returns the corner cell's elevation, falling back to the nearest
// valid cell when the corner itself is masked.
func cornerZ(r *Raster, row, col int) float64 {
	if z, ok := r.ElevationAt(row, col); ok {
		return z
	}
	best := math.MaxInt
	z := 0.0
	for rr := 0; rr < r.Height; rr++ {
		for cc := 0; cc < r.Width; cc++ {
			v, ok := r.ElevationAt(rr, cc)
			if !ok {
				continue
			}
			d := absInt(rr-row) + absInt(cc-col)
			if d < best {
				best = d
				z = v
			}
		}
	}
	return z
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// seedMesh builds the two-triangle mesh over the raster's corner cells.
func seedMesh(r *Raster, stats *Stats) (*Mesh, error) {
	ring := [4][2]int{
		{0, 0},
		{0, r.Width - 1},
		{r.Height - 1, r.Width - 1},
		{r.Height - 1, 0},
	}
	var corners [4]Vertex
	for i, rc := range ring {
		x, y := r.CellCenter(rc[0], rc[1])
		corners[i] = Vertex{X: x, Y: y, Z: cornerZ(r, rc[0], rc[1])}
	}
	snap := 1e-6 * math.Min(math.Abs(r.DX), math.Abs(r.DY))
	return newMesh(corners, snap, stats)
}
