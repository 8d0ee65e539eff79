package canvas

import (
	"image/color"

	"prism/gfx/fonts/font6x8"

	"tinygo.org/x/tinyfont"
)

// LineHeight is the vertical advance between text lines.
const LineHeight = font6x8.Height + 2

// WriteText draws s with its cell's top-left corner at screen (x, y).
func WriteText(t Target, x, y int, s string, c color.RGBA) {
	d := NewDisplay(t, nil)
	tinyfont.WriteLine(d, font6x8.Font, int16(x), int16(y+font6x8.Ascent), s, c)
}

// TextWidth returns the width of s in pixels.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(font6x8.Font, s)
	return int(outbox)
}

// FillRect fills a screen-space rectangle, clipped to the target.
func FillRect(t Target, x, y, w, h int, c color.RGBA) {
	_ = NewDisplay(t, nil).FillRectangle(int16(x), int16(y), int16(w), int16(h), c)
}
