// Package spiral plots an outward spiral a few points per frame.
package spiral

import (
	"github.com/chewxy/math32"

	"prism/gfx/canvas"
	"prism/gfx/vec"
)

const (
	angleStep  = math32.Pi * 0.005
	radiusStep = 0.1
)

// DefaultSpeed is the number of points plotted per frame.
const DefaultSpeed = 8

var (
	backdrop = vec.RGB(0x0A, 0x0A, 0x0A)
	ink      = vec.RGB(0xFF, 0, 0)
)

type Demo struct {
	Speed int

	angle  float32
	radius float32
}

func New(speed int) *Demo {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Demo{Speed: speed}
}

func (d *Demo) Name() string  { return "spiral" }
func (d *Demo) Title() string { return "Spiral" }

func (d *Demo) Start(c *canvas.Canvas) {
	d.angle = 0
	d.radius = 1
	c.Clear(backdrop)
}

// Step plots up to Speed points and reports whether the spiral has reached
// the edge of the canvas.
func (d *Demo) Step(c *canvas.Canvas) bool {
	limit := float32(c.Width() / 2)
	for i := 0; i < d.Speed; i++ {
		if d.radius >= limit {
			return true
		}
		x := d.radius * math32.Cos(d.angle)
		y := d.radius * math32.Sin(d.angle)
		c.PutPixel(int(x), int(y), ink)
		d.angle += angleStep
		d.radius += radiusStep
	}
	return d.radius >= limit
}
