//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"prism/app"
	"prism/demos"
	"prism/hal"
	"prism/internal/buildinfo"
)

func main() {
	var (
		headless bool
		cfg      hal.HeadlessConfig
		appCfg   app.Config
		rgb565   bool
		list     bool
		version  bool
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&cfg.Host.Width, "width", 600, "Canvas width in pixels.")
	flag.IntVar(&cfg.Host.Height, "height", 600, "Canvas height in pixels.")
	flag.IntVar(&cfg.Host.Scale, "scale", 1, "Window zoom factor.")
	flag.BoolVar(&rgb565, "rgb565", false, "Use a 16-bit RGB565 framebuffer.")
	flag.StringVar(&appCfg.Demo, "demo", "", "Start this demo instead of the menu (see -list).")
	flag.StringVar(&appCfg.Output, "out", "", "Write the finished frame to this PNG file and exit.")
	flag.BoolVar(&appCfg.ExitWhenDone, "exit", false, "Exit once the demo finishes.")
	flag.IntVar(&appCfg.SpiralSpeed, "spiral-speed", 0, "Spiral points per frame (0 = default).")
	flag.BoolVar(&appCfg.TriangleOutline, "outline", false, "Outline the filled triangle.")
	flag.BoolVar(&list, "list", false, "List demos and exit.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Printf("prism %s (commit %s, built %s)\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
		return
	}
	if list {
		for _, d := range demos.Catalog(demos.Options{}) {
			fmt.Printf("%-14s %s\n", d.Name(), d.Title())
		}
		return
	}

	if rgb565 {
		cfg.Host.Format = hal.PixelFormatRGB565
	}
	if appCfg.Output != "" {
		appCfg.ExitWhenDone = true
	}
	if appCfg.ExitWhenDone && appCfg.Demo == "" {
		fmt.Fprintln(os.Stderr, "-out and -exit need -demo")
		os.Exit(2)
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.Host, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
