package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"prism/gfx/canvas"
)

// guard runs fn and turns a panic into a crash screen plus an error.
func (a *app) guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = a.crash(r, debug.Stack())
		}
	}()
	fn()
	return nil
}

func (a *app) crash(v any, stack []byte) error {
	name := "app"
	if a.cur != nil {
		name = a.cur.Name()
	}

	lines := []string{
		"Panic:",
		fmt.Sprintf("demo: %s", name),
		fmt.Sprintf("panic: %v", v),
	}
	a.logf("app: panic in %s: %v", name, v)
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			a.logf("%s", line)
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	a.fb.ClearRGB(255, 255, 255)
	fg := color.RGBA{A: 255}
	w, h := a.target.Size()
	cols := w / canvas.TextWidth("0")
	if cols <= 0 {
		cols = 1
	}

	y := 0
draw:
	for _, line := range lines {
		for len(line) > 0 {
			if y+canvas.LineHeight > h {
				break draw
			}
			chunk, rest := takeRunes(line, cols)
			canvas.WriteText(a.target, 0, y, chunk, fg)
			y += canvas.LineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = a.target.Present()

	return fmt.Errorf("app: %s panicked: %v", name, v)
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
