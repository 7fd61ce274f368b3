package ras2tin

import "math"

// triangleNormal returns the (unnormalized) plane normal of triangle i.
func (t *TIN) triangleNormal(i int) (nx, ny, nz float64) {
	a := t.Vertices[t.Triangles[i][0]]
	b := t.Vertices[t.Triangles[i][1]]
	c := t.Vertices[t.Triangles[i][2]]
	ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	return uy*vz - uz*vy, uz*vx - ux*vz, ux*vy - uy*vx
}

// Slope returns the slope of every triangle plane in degrees from the
// horizontal, in triangle order.
func (t *TIN) Slope() []float64 {
	out := make([]float64, len(t.Triangles))
	for i := range t.Triangles {
		nx, ny, nz := t.triangleNormal(i)
		mod := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if mod == 0 {
			continue
		}
		out[i] = math.Acos(math.Abs(nz)/mod) * 180 / math.Pi
	}
	return out
}

// Aspect returns the downslope direction of every triangle in degrees
// clockwise from north. Flat triangles report 0.
func (t *TIN) Aspect() []float64 {
	out := make([]float64, len(t.Triangles))
	for i := range t.Triangles {
		nx, ny, nz := t.triangleNormal(i)
		if nz < 0 {
			nx, ny = -nx, -ny
		}
		if nx == 0 && ny == 0 {
			continue
		}
		a := math.Atan2(nx, ny)
		a = math.Mod(a+2*math.Pi, 2*math.Pi)
		out[i] = a * 180 / math.Pi
	}
	return out
}
