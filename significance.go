package ras2tin

// laplacian is the 3x3 significance kernel: a cell's significance is how
// far it sticks out from the plane of its eight neighbors.
var laplacian = [3][3]float64{
	{-1, -1, -1},
	{-1, 8, -1},
	{-1, -1, -1},
}

// Significance convolves the raster with the Laplacian kernel and returns
// one value per cell, row-major. Borders are padded by mirroring the edge
// cells; nodata cells get zero significance and nodata neighbors are
// substituted with the center value so they never bias the response.
func Significance(r *Raster) []float64 {
	out := make([]float64, r.Width*r.Height)
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			center, ok := r.ElevationAt(row, col)
			if !ok {
				continue
			}
			var sum float64
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					nr := clamp(row+dr, 0, r.Height-1)
					nc := clamp(col+dc, 0, r.Width-1)
					v, ok := r.ElevationAt(nr, nc)
					if !ok {
						v = center
					}
					sum += laplacian[dr+1][dc+1] * v
				}
			}
			out[row*r.Width+col] = sum
		}
	}
	return out
}
