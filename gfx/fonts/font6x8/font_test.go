package font6x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type recorder struct {
	px map[[2]int16]bool
}

func (r *recorder) Size() (x, y int16) { return 64, 16 }
func (r *recorder) SetPixel(x, y int16, c color.RGBA) {
	if r.px == nil {
		r.px = map[[2]int16]bool{}
	}
	r.px[[2]int16{x, y}] = true
}
func (r *recorder) Display() error { return nil }

func TestGlyphTableCoversPrintableASCII(t *testing.T) {
	if got, want := len(glyphData), (0x7e-0x20+1)*5; got != want {
		t.Fatalf("len(glyphData)=%d want %d", got, want)
	}
}

func TestUnknownRuneFallsBackToQuestionMark(t *testing.T) {
	if glyphIndex('é') != glyphIndex('?') {
		t.Fatalf("non-ASCII rune should map to '?'")
	}
	if glyphIndex('\n') != glyphIndex('?') {
		t.Fatalf("control rune should map to '?'")
	}
}

func TestDrawStaysInCell(t *testing.T) {
	var r recorder
	const x, y = 10, 9
	Font.GetGlyph('W').Draw(&r, x, y, color.RGBA{A: 0xff})
	if len(r.px) == 0 {
		t.Fatalf("no pixels drawn")
	}
	for p := range r.px {
		if p[0] < x || p[0] >= x+Width-1 {
			t.Fatalf("pixel %v outside glyph columns", p)
		}
		if p[1] < y-Ascent || p[1] > y {
			t.Fatalf("pixel %v outside glyph rows", p)
		}
	}
}

func TestSpaceIsBlank(t *testing.T) {
	var r recorder
	Font.GetGlyph(' ').Draw(&r, 0, 7, color.RGBA{A: 0xff})
	if len(r.px) != 0 {
		t.Fatalf("space drew %d pixels", len(r.px))
	}
}

func TestLineWidthIsMonospace(t *testing.T) {
	_, outbox := tinyfont.LineWidth(Font, "q - Quit")
	if outbox != 8*Width {
		t.Fatalf("outbox=%d want %d", outbox, 8*Width)
	}
}
