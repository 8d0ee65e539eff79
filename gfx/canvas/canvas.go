// Package canvas maps the centered, y-up canvas coordinate system used by the
// renderers onto a pixel target.
package canvas

import (
	"image/color"

	"prism/gfx/vec"
)

// Viewport is the projection plane: Width x Height world units at Distance
// from the camera.
type Viewport struct {
	Width    float32
	Height   float32
	Distance float32
}

// DefaultViewport is 1x1 at distance 1.
var DefaultViewport = Viewport{Width: 1, Height: 1, Distance: 1}

// Canvas has its origin at the center of the target, x right and y up.
type Canvas struct {
	t  Target
	vp Viewport
}

func New(t Target) *Canvas {
	return &Canvas{t: t, vp: DefaultViewport}
}

func (c *Canvas) Target() Target { return c.t }

func (c *Canvas) Width() int {
	w, _ := c.t.Size()
	return w
}

func (c *Canvas) Height() int {
	_, h := c.t.Size()
	return h
}

func (c *Canvas) Viewport() Viewport { return c.vp }

func (c *Canvas) SetViewport(vp Viewport) { c.vp = vp }

// PutPixel plots canvas pixel (x, y). Channels are narrowed to 8 bits with a
// plain conversion, so out-of-range values wrap rather than saturate.
func (c *Canvas) PutPixel(x, y int, col vec.Color) {
	w, h := c.t.Size()
	c.t.SetPixel(w/2+x, h/2-y, narrow(col))
}

// ToViewport returns the ray direction through canvas pixel (x, y).
func (c *Canvas) ToViewport(x, y int) vec.Vector3 {
	w, h := c.t.Size()
	return vec.V3(
		float32(x)*c.vp.Width/float32(w),
		float32(y)*c.vp.Height/float32(h),
		c.vp.Distance,
	)
}

// Clear fills the whole target.
func (c *Canvas) Clear(col vec.Color) {
	w, h := c.t.Size()
	rgba := narrow(col)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.t.SetPixel(x, y, rgba)
		}
	}
}

func narrow(c vec.Color) color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: uint8(c.A)}
}
