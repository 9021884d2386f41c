package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	Hz      int
	Ticks   uint64
	// Snapshot, when set, names a PNG file that receives the last
	// presented frame once the run stops.
	Snapshot      string
	SnapshotScale int
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	return runHeadless(ctx, newHost(cfg.Width, cfg.Height, os.Stdout), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	err := loopHeadless(ctx, t.C, step, cfg.Ticks)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if cfg.Snapshot != "" {
		if serr := SaveSnapshot(cfg.Snapshot, h.fb, cfg.SnapshotScale); serr != nil {
			return serr
		}
		h.logger.WriteLineString("snapshot: " + cfg.Snapshot)
	}
	return err
}

func loopHeadless(ctx context.Context, tick <-chan time.Time, step func() error, limit uint64) error {
	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			n++
			if limit > 0 && n >= limit {
				return nil
			}
		}
	}
}
