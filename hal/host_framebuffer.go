//go:build !tinygo

package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	format PixelFormat
	stride int
	buf    []byte

	presented uint64
}

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	if format.BytesPerPixel() == 0 {
		format = PixelFormatRGBA8888
	}
	stride := width * format.BytesPerPixel()
	return &hostFramebuffer{
		width:  width,
		height: height,
		format: format,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

// Present marks the current contents as a finished frame. The window backend
// only re-uploads the texture when the frame counter moved.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.presented++
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presented
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bpp := f.format.BytesPerPixel()
	for off := 0; off+bpp <= len(f.buf); off += bpp {
		PutRGB(f.buf, off, f.format, r, g, b)
	}
}

func (f *hostFramebuffer) snapshot(fn func(src []byte)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.buf)
}
