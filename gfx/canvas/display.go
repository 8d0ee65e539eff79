package canvas

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Display adapts a Target to drivers.Displayer so tinyfont can draw on it.
type Display struct {
	t       Target
	present func() error
}

var _ drivers.Displayer = (*Display)(nil)

// NewDisplay wraps t. present, if non-nil, is called by Display().
func NewDisplay(t Target, present func() error) *Display {
	return &Display{t: t, present: present}
}

func (d *Display) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), c)
}

func (d *Display) Display() error {
	if d.present == nil {
		return nil
	}
	return d.present()
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.t == nil {
		return nil
	}
	w, h := d.t.Size()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.t.SetPixel(px, py, c)
		}
	}
	return nil
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
