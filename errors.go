package ras2tin

import "fmt"

// DegenerateInsertionError is returned when a candidate vertex coincides
// with a vertex already present in the mesh. The candidate is dropped and
// refinement continues; it never aborts a run.
type DegenerateInsertionError struct {
	X, Y float64
}

func (e *DegenerateInsertionError) Error() string {
	return fmt.Sprintf("ras2tin: degenerate insertion at (%g, %g): point coincides with an existing vertex", e.X, e.Y)
}

// NonTerminatingConfigurationError is returned before any mesh work begins
// when neither the error tolerance nor the point budget would ever stop the
// refinement loop.
type NonTerminatingConfigurationError struct {
	MaxError  float64
	MaxPoints int
}

func (e *NonTerminatingConfigurationError) Error() string {
	return fmt.Sprintf("ras2tin: non-terminating configuration: MaxError=%g, MaxPoints=%d; at least one bound must be finite", e.MaxError, e.MaxPoints)
}

// InvalidRasterError is returned at seed time for rasters the refinement
// cannot operate on.
type InvalidRasterError struct {
	Reason string
}

func (e *InvalidRasterError) Error() string {
	return "ras2tin: invalid raster: " + e.Reason
}

// Stats accumulates per-run counters. Recoverable numerical conditions are
// counted here instead of surfacing as errors.
type Stats struct {
	Insertions         int
	Flips              int
	DegenerateDrops    int
	PredicateFallbacks int
	FlipBudgetHits     int
}
