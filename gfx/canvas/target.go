package canvas

import (
	"image"
	"image/color"

	"prism/hal"
)

// Target is a minimal pixel target in screen space (origin top-left, y down).
//
// Implementations clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
}

// FramebufferTarget draws into a HAL framebuffer.
type FramebufferTarget struct {
	fb hal.Framebuffer
}

func NewFramebufferTarget(fb hal.Framebuffer) *FramebufferTarget {
	return &FramebufferTarget{fb: fb}
}

func (t *FramebufferTarget) Size() (w, h int) {
	if t == nil || t.fb == nil {
		return 0, 0
	}
	return t.fb.Width(), t.fb.Height()
}

func (t *FramebufferTarget) SetPixel(x, y int, c color.RGBA) {
	if t == nil || t.fb == nil {
		return
	}
	if x < 0 || y < 0 || x >= t.fb.Width() || y >= t.fb.Height() {
		return
	}
	f := t.fb.Format()
	hal.PutRGB(t.fb.Buffer(), y*t.fb.StrideBytes()+x*f.BytesPerPixel(), f, c.R, c.G, c.B)
}

// Present forwards to the framebuffer.
func (t *FramebufferTarget) Present() error {
	if t == nil || t.fb == nil {
		return nil
	}
	return t.fb.Present()
}

// ImageTarget draws into an in-memory RGBA image.
type ImageTarget struct {
	Img *image.RGBA
}

func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) SetPixel(x, y int, c color.RGBA) {
	b := t.Img.Bounds()
	if !(image.Point{X: b.Min.X + x, Y: b.Min.Y + y}).In(b) {
		return
	}
	t.Img.SetRGBA(b.Min.X+x, b.Min.Y+y, c)
}
