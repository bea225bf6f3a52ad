// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/rs/zerolog"
)

// Option customizes Run. Defaults: silent logger, time.Now, a seeded
// matrix.NewSource, ReadUsage, TotalMemory, no inspection hook.
type Option func(*runOptions)

type runOptions struct {
	logger  zerolog.Logger
	clock   func() time.Time
	source  matrix.Source
	usage   func() (Usage, error)
	ceiling func() (int64, error)
	inspect func(a, b, c *matrix.Dense) error
}

// WithLogger routes phase events (debug) and warnings to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *runOptions) { o.logger = l }
}

// WithClock replaces time.Now for every timeline mark.
func WithClock(now func() time.Time) Option {
	return func(o *runOptions) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithSource fills A and B from src instead of a source seeded from Config.Seed.
func WithSource(src matrix.Source) Option {
	return func(o *runOptions) { o.source = src }
}

// WithUsageProbe replaces ReadUsage as the CPU and peak-memory sampler.
func WithUsageProbe(probe func() (Usage, error)) Option {
	return func(o *runOptions) {
		if probe != nil {
			o.usage = probe
		}
	}
}

// WithMemoryCeiling replaces TotalMemory as the allocation ceiling consulted
// when Config.MaxBytes is zero.
func WithMemoryCeiling(probe func() (int64, error)) Option {
	return func(o *runOptions) {
		if probe != nil {
			o.ceiling = probe
		}
	}
}

// WithInspect runs fn on the operands and result after the timed region and
// before they are released. An error from fn fails the run.
func WithInspect(fn func(a, b, c *matrix.Dense) error) Option {
	return func(o *runOptions) { o.inspect = fn }
}

func gatherOptions(user ...Option) runOptions {
	o := runOptions{
		logger:  zerolog.Nop(),
		clock:   time.Now,
		usage:   ReadUsage,
		ceiling: TotalMemory,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
