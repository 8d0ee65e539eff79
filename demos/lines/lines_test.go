package lines

import (
	"testing"

	"prism/gfx/canvas"
)

func TestLinesEndpoints(t *testing.T) {
	tg := canvas.NewImageTarget(600, 600)
	c := canvas.New(tg)
	d := New()
	d.Start(c)
	if !d.Step(c) {
		t.Fatalf("Step should finish in one frame")
	}

	// Canvas (-200,-100) and (240,120) are red, (-50,-200) and (60,240) green.
	checks := []struct {
		x, y    int
		r, g, b uint8
	}{
		{300 - 200, 300 + 100, 255, 0, 0},
		{300 + 240, 300 - 120, 255, 0, 0},
		{300 - 50, 300 + 200, 0, 255, 0},
		{300 + 60, 300 - 240, 0, 255, 0},
		{0, 0, 255, 255, 255},
	}
	for _, ck := range checks {
		got := tg.Img.RGBAAt(ck.x, ck.y)
		if got.R != ck.r || got.G != ck.g || got.B != ck.b {
			t.Fatalf("(%d,%d)=%v want (%d,%d,%d)", ck.x, ck.y, got, ck.r, ck.g, ck.b)
		}
	}
}
