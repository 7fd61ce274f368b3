package ras2tin

import (
	"math"

	"github.com/golang/geo/r2"
)

// Raster is a read-only view over a regularly spaced elevation grid. Data is
// stored row-major, one sample per cell. Cells holding NoData (or NaN) are
// masked: they never contribute to interpolation or candidate selection.
type Raster struct {
	Data   []float64
	Width  int
	Height int
	// DX, DY are the cell sizes along x and y. DY may be negative for
	// north-up grids.
	DX, DY float64
	// X0, Y0 locate the outer corner of cell (0, 0).
	X0, Y0 float64
	NoData float64
}

// NewRaster wraps an elevation grid, validating that refinement can operate
// on it. The data slice is borrowed, not copied.
func NewRaster(data []float64, width, height int, dx, dy, x0, y0, nodata float64) (*Raster, error) {
	if width < 2 || height < 2 {
		return nil, &InvalidRasterError{Reason: "raster must be at least 2x2"}
	}
	if len(data) != width*height {
		return nil, &InvalidRasterError{Reason: "data length does not match width*height"}
	}
	if dx == 0 || dy == 0 || math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return nil, &InvalidRasterError{Reason: "cell size must be finite and non-zero"}
	}
	r := &Raster{Data: data, Width: width, Height: height, DX: dx, DY: dy, X0: x0, Y0: y0, NoData: nodata}
	valid := false
	for _, v := range data {
		if !r.isNoData(v) {
			valid = true
			break
		}
	}
	if !valid {
		return nil, &InvalidRasterError{Reason: "all cells are nodata"}
	}
	return r, nil
}

func (r *Raster) isNoData(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	return !math.IsNaN(r.NoData) && v == r.NoData
}

// ElevationAt returns the sample at (row, col). The second return value is
// false for out-of-bounds or masked cells; boundary conditions never error.
func (r *Raster) ElevationAt(row, col int) (float64, bool) {
	if row < 0 || row >= r.Height || col < 0 || col >= r.Width {
		return 0, false
	}
	v := r.Data[row*r.Width+col]
	if r.isNoData(v) {
		return 0, false
	}
	return v, true
}

// CellCenter returns the world coordinates of the center of cell (row, col).
func (r *Raster) CellCenter(row, col int) (x, y float64) {
	return r.X0 + (float64(col)+0.5)*r.DX, r.Y0 + (float64(row)+0.5)*r.DY
}

// CellIndex maps world coordinates to the enclosing cell indices, unclipped.
func (r *Raster) CellIndex(x, y float64) (row, col int) {
	return int(math.Floor((y - r.Y0) / r.DY)), int(math.Floor((x - r.X0) / r.DX))
}

// Interpolate returns the bilinear elevation at a continuous (x, y),
// degrading to nearest-neighbor where fewer than four valid cell centers
// enclose the point. The second return value is false when every
// contributing cell is masked or the point is outside the grid.
func (r *Raster) Interpolate(x, y float64) (float64, bool) {
	gx := (x-r.X0)/r.DX - 0.5
	gy := (y-r.Y0)/r.DY - 0.5
	if gx < -0.5 || gy < -0.5 || gx > float64(r.Width)-0.5 || gy > float64(r.Height)-0.5 {
		return 0, false
	}
	c0 := clamp(int(math.Floor(gx)), 0, r.Width-1)
	r0 := clamp(int(math.Floor(gy)), 0, r.Height-1)
	c1 := clamp(c0+1, 0, r.Width-1)
	r1 := clamp(r0+1, 0, r.Height-1)
	fx := clamp(gx-float64(c0), 0, 1)
	fy := clamp(gy-float64(r0), 0, 1)

	v00, ok00 := r.ElevationAt(r0, c0)
	v01, ok01 := r.ElevationAt(r0, c1)
	v10, ok10 := r.ElevationAt(r1, c0)
	v11, ok11 := r.ElevationAt(r1, c1)
	if ok00 && ok01 && ok10 && ok11 {
		top := v00*(1-fx) + v01*fx
		bot := v10*(1-fx) + v11*fx
		return top*(1-fy) + bot*fy, true
	}
	// Nearest valid neighbor fallback.
	nr := r0
	if fy > 0.5 {
		nr = r1
	}
	nc := c0
	if fx > 0.5 {
		nc = c1
	}
	if v, ok := r.ElevationAt(nr, nc); ok {
		return v, true
	}
	for _, cand := range [][2]int{{r0, c0}, {r0, c1}, {r1, c0}, {r1, c1}} {
		if v, ok := r.ElevationAt(cand[0], cand[1]); ok {
			return v, true
		}
	}
	return 0, false
}

// CellsWithin returns the inclusive index range of cell centers that may fall
// inside the given world-space bounding box, clipped to the raster extent.
// The range is empty when r1 < r0 or c1 < c0.
func (r *Raster) CellsWithin(bbox r2.Rect) (r0, c0, r1, c1 int) {
	gx0 := (bbox.X.Lo-r.X0)/r.DX - 0.5
	gx1 := (bbox.X.Hi-r.X0)/r.DX - 0.5
	if gx1 < gx0 {
		gx0, gx1 = gx1, gx0
	}
	gy0 := (bbox.Y.Lo-r.Y0)/r.DY - 0.5
	gy1 := (bbox.Y.Hi-r.Y0)/r.DY - 0.5
	if gy1 < gy0 {
		gy0, gy1 = gy1, gy0
	}
	if int(math.Floor(gx1+1e-9)) < 0 || int(math.Ceil(gx0-1e-9)) > r.Width-1 ||
		int(math.Floor(gy1+1e-9)) < 0 || int(math.Ceil(gy0-1e-9)) > r.Height-1 {
		return 0, 0, -1, -1
	}
	c0 = clamp(int(math.Ceil(gx0-1e-9)), 0, r.Width-1)
	c1 = clamp(int(math.Floor(gx1+1e-9)), 0, r.Width-1)
	r0 = clamp(int(math.Ceil(gy0-1e-9)), 0, r.Height-1)
	r1 = clamp(int(math.Floor(gy1+1e-9)), 0, r.Height-1)
	return r0, c0, r1, c1
}

// Bounds returns the world-space rectangle spanned by the cell centers.
func (r *Raster) Bounds() r2.Rect {
	x0, y0 := r.CellCenter(0, 0)
	x1, y1 := r.CellCenter(r.Height-1, r.Width-1)
	return r2.RectFromPoints(r2.Point{X: x0, Y: y0}, r2.Point{X: x1, Y: y1})
}
