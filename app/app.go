package app

import (
	"errors"
	"fmt"
	"time"

	"prism/demos"
	"prism/gfx/canvas"
	"prism/hal"
)

// Config selects what the app does at startup.
type Config struct {
	// Demo starts the named demo instead of the menu.
	Demo string
	// Output is a PNG path written when a demo finishes and ExitWhenDone is set.
	Output string
	// ExitWhenDone ends the run as soon as the first demo finishes.
	ExitWhenDone bool

	SpiralSpeed     int
	TriangleOutline bool
}

type state uint8

const (
	stateMenu state = iota
	stateRunning
	stateFinished
)

type app struct {
	h   hal.HAL
	cfg Config
	log hal.Logger

	fb     hal.Framebuffer
	target *canvas.FramebufferTarget
	canvas *canvas.Canvas
	kbd    hal.Keyboard

	demos []demos.Demo
	cur   demos.Demo
	state state
	dirty bool

	started time.Time
	elapsed time.Duration
}

// New returns the per-frame step function with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig returns the per-frame step function. The step returns
// hal.ErrQuit when the user quits.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a, err := newApp(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return a.step
}

func newApp(h hal.HAL, cfg Config) (*app, error) {
	a := &app{
		h:     h,
		cfg:   cfg,
		log:   h.Logger(),
		demos: demos.Catalog(demos.Options{SpiralSpeed: cfg.SpiralSpeed, TriangleOutline: cfg.TriangleOutline}),
		dirty: true,
	}
	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if a.fb == nil {
		return nil, errors.New("app: no framebuffer")
	}
	a.target = canvas.NewFramebufferTarget(a.fb)
	a.canvas = canvas.New(a.target)
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}

	if cfg.Demo != "" {
		d, ok := demos.Find(a.demos, cfg.Demo)
		if !ok {
			return nil, fmt.Errorf("app: unknown demo %q", cfg.Demo)
		}
		a.cur = d
		a.state = stateRunning
	}
	return a, nil
}

func (a *app) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (a *app) step() error {
	switch a.state {
	case stateMenu:
		return a.stepMenu()
	case stateRunning:
		return a.stepDemo()
	case stateFinished:
		if hal.PollQuitOrEscape(a.kbd) {
			a.enterMenu()
		}
	}
	return nil
}

func (a *app) enterMenu() {
	a.cur = nil
	a.state = stateMenu
	a.dirty = true
}

func (a *app) stepDemo() error {
	d := a.cur
	if a.started.IsZero() {
		a.logf("app: starting %s", d.Name())
		a.started = time.Now()
		if err := a.guard(func() { d.Start(a.canvas) }); err != nil {
			return err
		}
	} else if hal.PollQuitOrEscape(a.kbd) {
		a.logf("app: %s interrupted", d.Name())
		a.started = time.Time{}
		a.enterMenu()
		return nil
	}

	var done bool
	if err := a.guard(func() { done = d.Step(a.canvas) }); err != nil {
		return err
	}
	if !done {
		return a.target.Present()
	}

	a.elapsed = time.Since(a.started)
	a.started = time.Time{}
	a.logf("app: %s done in %s", d.Name(), a.elapsed.Round(time.Millisecond))

	if a.cfg.ExitWhenDone {
		if a.cfg.Output != "" {
			if err := writePNG(a.cfg.Output, a.fb); err != nil {
				return err
			}
			a.logf("app: wrote %s", a.cfg.Output)
		}
		if err := a.target.Present(); err != nil {
			return err
		}
		return hal.ErrQuit
	}

	a.state = stateFinished
	a.drawStatus(fmt.Sprintf("%s: %s - Esc: menu", d.Title(), a.elapsed.Round(time.Millisecond)))
	return a.target.Present()
}
