// Package lines draws two crossing line segments.
package lines

import (
	"prism/gfx/canvas"
	"prism/gfx/raster"
	"prism/gfx/vec"
)

var white = vec.RGB(255, 255, 255)

type Demo struct{}

func New() *Demo { return &Demo{} }

func (*Demo) Name() string  { return "lines" }
func (*Demo) Title() string { return "Lines" }

func (*Demo) Start(c *canvas.Canvas) { c.Clear(white) }

func (*Demo) Step(c *canvas.Canvas) bool {
	raster.DrawLine(c, vec.V3(-200, -100, 0), vec.V3(240, 120, 0), vec.RGB(255, 0, 0))
	raster.DrawLine(c, vec.V3(-50, -200, 0), vec.V3(60, 240, 0), vec.RGB(0, 255, 0))
	return true
}
