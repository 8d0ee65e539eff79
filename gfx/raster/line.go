package raster

import (
	"github.com/chewxy/math32"

	"prism/gfx/vec"
)

// DrawLine plots the segment p0-p1 (only X and Y are used). Endpoint
// coordinates are truncated toward zero. The line steps one pixel at a time
// along its major axis.
func DrawLine(p Plotter, p0, p1 vec.Vector3, c vec.Color) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if math32.Abs(dx) > math32.Abs(dy) {
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		x0, x1 := int(p0.X), int(p1.X)
		ys := Interpolate(x0, p0.Y, x1, p1.Y)
		for x := x0; x <= x1; x++ {
			p.PutPixel(x, int(ys[x-x0]), c)
		}
		return
	}

	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	y0, y1 := int(p0.Y), int(p1.Y)
	xs := Interpolate(y0, p0.X, y1, p1.X)
	for y := y0; y <= y1; y++ {
		p.PutPixel(int(xs[y-y0]), y, c)
	}
}

// DrawWireframeTriangle outlines p0-p1-p2.
func DrawWireframeTriangle(p Plotter, p0, p1, p2 vec.Vector3, c vec.Color) {
	DrawLine(p, p0, p1, c)
	DrawLine(p, p1, p2, c)
	DrawLine(p, p2, p0, c)
}
