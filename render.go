package ras2tin

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Wireframe rendering modes.
const (
	WithoutWireframe = iota
	WithWireframe
	WireframeOnly
)

// elevationScale is the terrain colorscale: deep blue for the lowest
// elevations through green and yellow up to red for the peaks.
var elevationScale = []struct {
	pos     float64
	r, g, b uint8
}{
	{0.0, 0, 0, 128},
	{0.2, 0, 128, 255},
	{0.4, 0, 255, 0},
	{0.6, 255, 255, 0},
	{0.8, 255, 165, 0},
	{1.0, 255, 0, 0},
}

func elevationColor(t float64) color.RGBA {
	t = clamp(t, 0, 1)
	for i := 1; i < len(elevationScale); i++ {
		if t <= elevationScale[i].pos {
			lo, hi := elevationScale[i-1], elevationScale[i]
			f := (t - lo.pos) / (hi.pos - lo.pos)
			return color.RGBA{
				R: uint8(float64(lo.r) + f*(float64(hi.r)-float64(lo.r))),
				G: uint8(float64(lo.g) + f*(float64(hi.g)-float64(lo.g))),
				B: uint8(float64(lo.b) + f*(float64(hi.b)-float64(lo.b))),
				A: 255,
			}
		}
	}
	last := elevationScale[len(elevationScale)-1]
	return color.RGBA{R: last.r, G: last.g, B: last.b, A: 255}
}

// Renderer draws a TIN preview image: triangles filled with the elevation
// colorscale at the centroid elevation, optionally outlined.
type Renderer struct {
	Width, Height int
	Wireframe     int
	LineWidth     float64
	Background    color.Color
}

// Render rasterizes the TIN. Zero-valued dimensions default to 1024 on the
// longer world axis with the aspect ratio preserved.
func (rd *Renderer) Render(t *TIN) image.Image {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, v := range t.Vertices {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
		minZ = math.Min(minZ, v.Z)
		maxZ = math.Max(maxZ, v.Z)
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 || spanY == 0 {
		spanX, spanY = 1, 1
	}
	w, h := rd.Width, rd.Height
	if w <= 0 || h <= 0 {
		if spanX >= spanY {
			w = 1024
			h = int(1024 * spanY / spanX)
		} else {
			h = 1024
			w = int(1024 * spanX / spanY)
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}
	px := func(v Vertex) (float64, float64) {
		return (v.X - minX) / spanX * float64(w), (v.Y - minY) / spanY * float64(h)
	}
	zspan := maxZ - minZ

	ctx := gg.NewContext(w, h)
	bg := rd.Background
	if bg == nil {
		bg = color.White
	}
	ctx.SetColor(bg)
	ctx.Clear()

	lw := rd.LineWidth
	if lw <= 0 {
		lw = 1
	}
	for _, tri := range t.Triangles {
		a := t.Vertices[tri[0]]
		b := t.Vertices[tri[1]]
		c := t.Vertices[tri[2]]

		ax, ay := px(a)
		bx, by := px(b)
		cx, cy := px(c)

		ctx.Push()
		ctx.MoveTo(ax, ay)
		ctx.LineTo(bx, by)
		ctx.LineTo(cx, cy)
		ctx.LineTo(ax, ay)

		cz := (a.Z + b.Z + c.Z) / 3
		fill := elevationColor(0.5)
		if zspan > 0 {
			fill = elevationColor((cz - minZ) / zspan)
		}

		switch rd.Wireframe {
		case WithoutWireframe:
			ctx.SetFillStyle(gg.NewSolidPattern(fill))
			ctx.Fill()
		case WithWireframe:
			ctx.SetFillStyle(gg.NewSolidPattern(fill))
			ctx.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 0, G: 0, B: 0, A: 20}))
			ctx.SetLineWidth(lw)
			ctx.FillPreserve()
			ctx.Stroke()
		case WireframeOnly:
			ctx.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 0, G: 0, B: 0, A: 255}))
			ctx.SetLineWidth(lw)
			ctx.Stroke()
		}
		ctx.Pop()
	}
	return ctx.Image()
}

// SavePNG renders the TIN and writes it to path.
func (rd *Renderer) SavePNG(path string, t *TIN) error {
	ctx := gg.NewContextForImage(rd.Render(t))
	return ctx.SavePNG(path)
}
