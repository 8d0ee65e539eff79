package hal

import "image"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// PutRGB encodes one pixel at byte offset off of buf in the given format.
// Out-of-range offsets are ignored.
func PutRGB(buf []byte, off int, f PixelFormat, r, g, b uint8) {
	switch f {
	case PixelFormatRGB565:
		if off < 0 || off+1 >= len(buf) {
			return
		}
		p := rgb565(r, g, b)
		buf[off] = byte(p)
		buf[off+1] = byte(p >> 8)
	case PixelFormatRGBA8888:
		if off < 0 || off+3 >= len(buf) {
			return
		}
		buf[off+0] = r
		buf[off+1] = g
		buf[off+2] = b
		buf[off+3] = 0xFF
	}
}

// FramebufferImage converts the framebuffer contents into dst, reallocating it
// when the geometry does not match. The (possibly new) image is returned.
func FramebufferImage(fb Framebuffer, dst *image.RGBA) *image.RGBA {
	w, h := fb.Width(), fb.Height()
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	if s, ok := fb.(interface{ snapshot(func(src []byte)) }); ok {
		s.snapshot(func(src []byte) { convertRows(dst, src, fb.Format(), fb.StrideBytes(), w, h) })
		return dst
	}
	convertRows(dst, fb.Buffer(), fb.Format(), fb.StrideBytes(), w, h)
	return dst
}

func convertRows(dst *image.RGBA, src []byte, f PixelFormat, stride, w, h int) {
	bpp := f.BytesPerPixel()
	if bpp == 0 || stride <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		row := y * stride
		out := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			off := row + x*bpp
			if off+bpp > len(src) {
				return
			}
			j := x * 4
			switch f {
			case PixelFormatRGB565:
				r, g, b := rgb888From565(uint16(src[off]) | uint16(src[off+1])<<8)
				out[j+0] = r
				out[j+1] = g
				out[j+2] = b
			case PixelFormatRGBA8888:
				out[j+0] = src[off+0]
				out[j+1] = src[off+1]
				out[j+2] = src[off+2]
			}
			out[j+3] = 0xFF
		}
	}
}
