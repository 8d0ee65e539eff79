package raster

import "prism/gfx/vec"

// DrawFilledTriangle fills p0-p1-p2 one horizontal span per row. Vertex
// coordinates are truncated toward zero on y; each span covers
// [left, right) so shared edges are not drawn twice.
//
// Which edge chain is left is decided once, from the middle row.
func DrawFilledTriangle(p Plotter, p0, p1, p2 vec.Vector3, c vec.Color) {
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
	}
	if p2.Y < p0.Y {
		p0, p2 = p2, p0
	}
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}
	y0, y1, y2 := int(p0.Y), int(p1.Y), int(p2.Y)

	x01 := Interpolate(y0, p0.X, y1, p1.X)
	x12 := Interpolate(y1, p1.X, y2, p2.X)
	x02 := Interpolate(y0, p0.X, y2, p2.X)

	// x01's last sample is x12's first.
	x012 := append(x01[:len(x01)-1:len(x01)-1], x12...)

	xLeft, xRight := x012, x02
	if m := len(x012) / 2; x02[m] < x012[m] {
		xLeft, xRight = x02, x012
	}

	for y := y0; y <= y2; y++ {
		left, right := xLeft[y-y0], xRight[y-y0]
		for x := int(left); float32(x) < right; x++ {
			p.PutPixel(x, y, c)
		}
	}
}
