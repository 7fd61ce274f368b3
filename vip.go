package ras2tin

import (
	"math"
	"sort"
)

// SelectVIP picks the "very important points" of the raster following Chen's
// systematic VIP selection: the grid is divided into blocks and each block
// contributes its cells with the highest and lowest Laplacian significance,
// so peaks and pits are kept evenly across the raster instead of clustering
// around the single sharpest feature. ratio is the overall fraction of cells
// to keep; blocks is the number of selection blocks.
func SelectVIP(r *Raster, sig []float64, ratio float64, blocks int) [][2]int {
	if blocks < 1 {
		blocks = 1
	}
	limit := int(0.5 * float64(r.Width*r.Height) * ratio)
	perBlock := limit / blocks
	if perBlock < 1 {
		perBlock = 1
	}

	gridRows := int(math.Sqrt(float64(blocks)))
	if gridRows < 1 {
		gridRows = 1
	}
	gridCols := blocks / gridRows
	if gridCols < 1 {
		gridCols = 1
	}
	blockH := r.Height / gridRows
	blockW := r.Width / gridCols

	var picked [][2]int
	for bi := 0; bi < gridRows; bi++ {
		for bj := 0; bj < gridCols; bj++ {
			r0, c0 := bi*blockH, bj*blockW
			r1, c1 := r0+blockH, c0+blockW
			if bi == gridRows-1 {
				r1 = r.Height
			}
			if bj == gridCols-1 {
				c1 = r.Width
			}

			var cells [][2]int
			for row := r0; row < r1; row++ {
				for col := c0; col < c1; col++ {
					if _, ok := r.ElevationAt(row, col); ok {
						cells = append(cells, [2]int{row, col})
					}
				}
			}
			sort.Slice(cells, func(i, j int) bool {
				si := sig[cells[i][0]*r.Width+cells[i][1]]
				sj := sig[cells[j][0]*r.Width+cells[j][1]]
				if si != sj {
					return si > sj
				}
				if cells[i][0] != cells[j][0] {
					return cells[i][0] < cells[j][0]
				}
				return cells[i][1] < cells[j][1]
			})

			n := len(cells)
			k := perBlock
			if 2*k > n {
				k = n / 2
			}
			picked = append(picked, cells[:k]...)
			picked = append(picked, cells[n-k:]...)
		}
	}
	return picked
}
