// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/matbench/matrix"
)

const opRun = "Run"

// Run executes one benchmark: allocate → fill → multiply → report → release.
// MAIN DESCRIPTION:
//   - Owns A, B and C for the whole call and releases them on every path.
//
// Implementation:
//   - Stage 1: validate cfg; size all three buffers and check them against
//     cfg.MaxBytes, or physical memory when it is zero, before anything is allocated.
//   - Stage 2: allocate A, B, C from cfg.Storage (RunStart → Allocated).
//   - Stage 3: fill A then B from one source (TotalStart → Initialized).
//   - Stage 4: multiply with cfg.Kernel (ComputeStart → Computed), close the
//     total window (TotalEnd) and sample resource usage.
//   - Stage 5: optional gonum verification and inspection hook, untimed.
//
// Behavior highlights:
//   - Resource usage failures are logged at warn level and leave
//     Report.MemoryAvailable false; they never fail the run.
//   - On any error the returned Report is nil.
//
// Errors:
//   - ErrInvalidSize, ErrInvalidConfig (config).
//   - matrix.ErrOutOfMemory (sizing, limit or physical memory, mapping).
//   - matrix.ErrVerifyFailed and any error from the inspection hook.
//   - Release errors from Close, joined with the primary error.
//
// Complexity:
//   - Time O(N^3), Space 3·N^2 float64.
func Run(cfg Config, opts ...Option) (rep *Report, err error) {
	if err = cfg.Validate(); err != nil {
		return nil, benchErrorf(opRun, err)
	}
	o := gatherOptions(opts...)
	log := o.logger.With().
		Int("n", cfg.Size).
		Str("kernel", cfg.Kernel.String()).
		Str("storage", cfg.Storage.String()).
		Logger()

	need, err := cfg.RequiredBytes()
	if err != nil {
		return nil, benchErrorf(opRun, err)
	}
	limit := cfg.MaxBytes
	if limit == 0 {
		if limit, err = o.ceiling(); err != nil {
			log.Debug().Err(err).Msg("no memory ceiling, allocating unchecked")
			limit, err = 0, nil
		}
	}
	if limit > 0 && need > limit {
		return nil, benchErrorf(opRun, fmt.Errorf("%w: %d bytes for %d %d×%d matrices, limit %d",
			matrix.ErrOutOfMemory, need, matrixCount, cfg.Size, cfg.Size, limit))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = o.clock().UnixNano()
	}
	src := o.source
	if src == nil {
		src = matrix.NewSource(seed)
	}

	var (
		tl      Timeline
		a, b, c *matrix.Dense
	)
	defer func() {
		err = errors.Join(err, a.Close(), b.Close(), c.Close())
		if err != nil {
			rep = nil
		}
	}()

	tl.RunStart = o.clock()
	alloc := matrix.WithStorage(cfg.Storage)
	if a, err = matrix.NewSquare(cfg.Size, alloc); err != nil {
		return nil, benchErrorf(opRun, fmt.Errorf("allocate A: %w", err))
	}
	if b, err = matrix.NewSquare(cfg.Size, alloc); err != nil {
		return nil, benchErrorf(opRun, fmt.Errorf("allocate B: %w", err))
	}
	if c, err = matrix.NewSquare(cfg.Size, alloc); err != nil {
		return nil, benchErrorf(opRun, fmt.Errorf("allocate C: %w", err))
	}
	tl.Allocated = o.clock()
	log.Debug().Dur("elapsed", tl.Allocation()).Int64("bytes", need).Msg("matrices allocated")

	before, beforeErr := o.usage()

	tl.TotalStart = o.clock()
	if err = matrix.Fill(a, src); err != nil {
		return nil, benchErrorf(opRun, err)
	}
	if err = matrix.Fill(b, src); err != nil {
		return nil, benchErrorf(opRun, err)
	}
	tl.Initialized = o.clock()
	log.Debug().Dur("elapsed", tl.Initialization()).Int64("seed", seed).Msg("matrices initialized")

	workers := effectiveWorkers(cfg)
	tl.ComputeStart = o.clock()
	if err = matrix.MultiplyWith(cfg.Kernel, a, b, c, matrix.WithWorkers(cfg.Workers)); err != nil {
		return nil, benchErrorf(opRun, err)
	}
	tl.Computed = o.clock()
	tl.TotalEnd = o.clock()
	log.Debug().Dur("elapsed", tl.Computation()).Int("workers", workers).Msg("product computed")

	after, afterErr := o.usage()

	rep = &Report{
		Size:     cfg.Size,
		Kernel:   cfg.Kernel.String(),
		Workers:  workers,
		Storage:  cfg.Storage.String(),
		Seed:     seed,
		Timeline: tl,
	}
	if afterErr != nil {
		log.Warn().Err(afterErr).Msg("peak memory unavailable")
	} else {
		rep.PeakRSSKiB = after.PeakRSSKiB
		rep.MemoryAvailable = true
		if beforeErr == nil {
			rep.CPU = after.CPU - before.CPU
		}
	}

	if cfg.Verify {
		if err = matrix.Verify(a, b, c, cfg.Tolerance); err != nil {
			return nil, benchErrorf(opRun, err)
		}
		rep.Verified = true
		log.Debug().Float64("tolerance", cfg.Tolerance).Msg("product verified")
	}
	if o.inspect != nil {
		if err = o.inspect(a, b, c); err != nil {
			return nil, benchErrorf(opRun, err)
		}
	}

	return rep, nil
}

// effectiveWorkers is the goroutine count the kernel will use for cfg.
// gonum's BLAS sizes its own pool from GOMAXPROCS.
func effectiveWorkers(cfg Config) int {
	switch cfg.Kernel {
	case matrix.KernelParallel:
		w := cfg.Workers
		if w <= 0 {
			w = runtime.GOMAXPROCS(0)
		}
		return min(w, cfg.Size)
	case matrix.KernelGonum:
		return runtime.GOMAXPROCS(0)
	default:
		return 1
	}
}
