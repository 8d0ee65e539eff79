// Package triangle draws a filled triangle.
package triangle

import (
	"prism/gfx/canvas"
	"prism/gfx/raster"
	"prism/gfx/vec"
)

var white = vec.RGB(255, 255, 255)

type Demo struct {
	// Outline additionally strokes the edges in black.
	Outline bool
}

func New() *Demo { return &Demo{} }

func (*Demo) Name() string  { return "triangle" }
func (*Demo) Title() string { return "Filled triangle" }

func (*Demo) Start(c *canvas.Canvas) { c.Clear(white) }

func (d *Demo) Step(c *canvas.Canvas) bool {
	p0, p1, p2 := vec.V3(-200, -250, 0), vec.V3(200, 50, 0), vec.V3(20, 250, 0)
	raster.DrawFilledTriangle(c, p0, p1, p2, vec.RGBA(0, 255, 0, 255))
	if d.Outline {
		raster.DrawWireframeTriangle(c, p0, p1, p2, vec.RGB(0, 0, 0))
	}
	return true
}
