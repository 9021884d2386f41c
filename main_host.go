package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"glowfield/app"
	"glowfield/field"
	"glowfield/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var win hal.WindowConfig
	var appCfg app.Config
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the last frame to this PNG file when a headless run stops.")
	flag.IntVar(&cfg.SnapshotScale, "snapshot-scale", 1, "Integer upscale factor for -snapshot.")
	flag.IntVar(&win.Scale, "scale", 2, "Initial window size as a multiple of the canvas.")
	flag.BoolVar(&win.HUD, "hud", false, "Overlay frame rate text in the window.")
	flag.Uint64Var(&appCfg.Seed, "seed", 0, "Seed for the point population (0 = from the clock).")
	flag.BoolVar(&appCfg.Clamp, "clamp", false, "Saturate the glow ramp instead of wrapping it.")
	flag.BoolVar(&appCfg.Grid, "grid", false, "Use a spatial grid for nearest-point queries.")
	flag.IntVar(&appCfg.Workers, "workers", 0, "Render in N row bands (negative = one per CPU).")
	flag.IntVar(&appCfg.StatsEvery, "stats", 0, "Log average render time every N frames (0 = off).")
	flag.Parse()

	cfg.Width, cfg.Height = field.Width, field.Height
	win.Width, win.Height = field.Width, field.Height
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, win); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
