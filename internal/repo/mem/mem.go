// Package mem provides in-memory implementations of the repo interfaces.
// This is the default data source: plain slices guarded by a mutex, with
// per-operation artificial latency simulating a remote store. State lives
// for the process lifetime only and is reset on restart.
//
// Latency is expressed as base durations scaled by a configurable factor,
// so production wiring can run with realistic delays while tests pass a
// scale of zero and run instantly.
package mem

import (
	"context"
	"time"
)

// Option configures a mem store at construction time.
type Option func(*options)

type options struct {
	latencyScale float64
}

// WithLatencyScale sets the multiplier applied to each operation's base
// latency. The default is 0 (no artificial delay); pass 1 for the full
// simulated delays (150–400ms depending on the operation).
func WithLatencyScale(scale float64) Option {
	return func(o *options) {
		if scale >= 0 {
			o.latencyScale = scale
		}
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// latency holds the base delay per operation kind for one store, mirroring
// the delays the original mock services used.
type latency struct {
	list, get, create, update, delete time.Duration
}

// wait blocks for the scaled duration or until ctx is done, whichever comes
// first. A zero scale returns immediately without arming a timer.
func (o options) wait(ctx context.Context, base time.Duration) error {
	d := time.Duration(float64(base) * o.latencyScale)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
