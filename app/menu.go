package app

import (
	"fmt"
	"image/color"

	"prism/gfx/canvas"
	"prism/hal"
)

var (
	colorMenuBG   = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xff}
	colorMenuFG   = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorMenuDim  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorStatusBG = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
)

const menuMargin = 8

func (a *app) menuLines() []string {
	lines := make([]string, 0, len(a.demos)+1)
	for i, d := range a.demos {
		lines = append(lines, fmt.Sprintf("%d - %s", i+1, d.Title()))
	}
	return append(lines, "q - Quit")
}

func (a *app) stepMenu() error {
	if a.dirty {
		a.dirty = false
		a.drawMenu()
		if err := a.target.Present(); err != nil {
			return err
		}
	}

	for _, ev := range hal.Drain(a.kbd) {
		if !ev.Press {
			continue
		}
		if hal.IsQuit(ev) {
			a.logf("app: quit")
			return hal.ErrQuit
		}
		if i, ok := menuIndex(ev.Rune, len(a.demos)); ok {
			a.cur = a.demos[i]
			a.state = stateRunning
			return nil
		}
	}
	return nil
}

// menuIndex maps '1'..'9' to a zero-based demo index.
func menuIndex(r rune, n int) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	i := int(r - '1')
	return i, i < n
}

func (a *app) drawMenu() {
	a.fb.ClearRGB(colorMenuBG.R, colorMenuBG.G, colorMenuBG.B)

	y := menuMargin
	canvas.WriteText(a.target, menuMargin, y, "prism", colorMenuDim)
	y += 2 * canvas.LineHeight

	a.logf("")
	for _, line := range a.menuLines() {
		canvas.WriteText(a.target, menuMargin, y, line, colorMenuFG)
		y += canvas.LineHeight
		a.logf("%s", line)
	}
}

// drawStatus paints a one-line bar across the top of the frame.
func (a *app) drawStatus(s string) {
	w, _ := a.target.Size()
	canvas.FillRect(a.target, 0, 0, w, canvas.LineHeight+4, colorStatusBG)
	if limit := (w - 2*menuMargin) / canvas.TextWidth("0"); limit > 0 && len(s) > limit {
		s = s[:limit]
	}
	canvas.WriteText(a.target, menuMargin, 3, s, colorMenuFG)
}
