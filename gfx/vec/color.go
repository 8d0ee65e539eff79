package vec

// Color is an RGBA color with integer channels.
//
// Channels are conventionally 0..255 but are never clamped: Scale and Add can
// push them out of range and the caller decides what to do with that.
type Color struct {
	R, G, B, A int
}

func RGB(r, g, b int) Color     { return Color{R: r, G: g, B: b, A: 255} }
func RGBA(r, g, b, a int) Color { return Color{R: r, G: g, B: b, A: a} }

// Scale multiplies every channel, alpha included, truncating toward zero.
func (c Color) Scale(f float32) Color {
	return Color{
		R: int(f * float32(c.R)),
		G: int(f * float32(c.G)),
		B: int(f * float32(c.B)),
		A: int(f * float32(c.A)),
	}
}

func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}
