package app

import (
	"fmt"
	"image/png"
	"os"

	"prism/hal"
)

// writePNG saves the current framebuffer contents to path.
func writePNG(path string, fb hal.Framebuffer) error {
	img := hal.FramebufferImage(fb, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("app: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("app: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("app: close %s: %w", path, err)
	}
	return nil
}
