// Package raster draws 2D primitives in canvas coordinates (origin at the
// center, y up) by scan conversion.
package raster

import "prism/gfx/vec"

// Plotter receives canvas-space pixels. *canvas.Canvas implements it.
type Plotter interface {
	PutPixel(x, y int, c vec.Color)
}

// Interpolate samples the linear function d(i) through (i0, d0) and
// (i1, d1) at every integer i in [i0, i1]. The step is accumulated, so long
// runs carry float32 drift just like the classic formulation. i1 < i0
// yields no samples.
func Interpolate(i0 int, d0 float32, i1 int, d1 float32) []float32 {
	if i0 == i1 {
		return []float32{d0}
	}
	if i1 < i0 {
		return nil
	}
	values := make([]float32, 0, i1-i0+1)
	a := (d1 - d0) / float32(i1-i0)
	d := d0
	for i := i0; i <= i1; i++ {
		values = append(values, d)
		d += a
	}
	return values
}
