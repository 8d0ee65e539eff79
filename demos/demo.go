// Package demos lists the tutorial programs the app can run.
package demos

import (
	"prism/demos/lines"
	"prism/demos/spheres"
	"prism/demos/spiral"
	"prism/demos/triangle"
	"prism/gfx/canvas"
)

// Demo is one tutorial program. Start prepares the canvas; Step is called
// once per frame until it reports done.
type Demo interface {
	Name() string
	Title() string
	Start(c *canvas.Canvas)
	Step(c *canvas.Canvas) (done bool)
}

type Options struct {
	SpiralSpeed     int
	TriangleOutline bool
}

// Catalog returns the demos in menu order.
func Catalog(opts Options) []Demo {
	tri := triangle.New()
	tri.Outline = opts.TriangleOutline
	return []Demo{
		spheres.New(spheres.Full),
		spiral.New(opts.SpiralSpeed),
		lines.New(),
		tri,
		spheres.New(spheres.Flat),
		spheres.New(spheres.Lit),
	}
}

// Find returns the demo called name.
func Find(list []Demo, name string) (Demo, bool) {
	for _, d := range list {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}
