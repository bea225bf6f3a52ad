// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matbench/matrix"
)

// matrixCount is the number of N×N matrices one run holds at once (A, B, C).
const matrixCount = 3

// DefaultSeed matches the implicit seed of an unseeded C rand(), so a default
// run is reproducible. A zero Seed asks Run to derive one from the clock.
const DefaultSeed int64 = 1

// Config describes one run. The zero value is not valid; start from DefaultConfig.
type Config struct {
	Size      int            // N; must be > 0
	Kernel    matrix.Kernel  // multiplication strategy
	Workers   int            // goroutines for KernelParallel; 0 = GOMAXPROCS
	Storage   matrix.Storage // buffer backend for A, B and C
	Seed      int64          // fill seed; 0 = derive from the clock
	MaxBytes  int64          // limit for all three buffers together; 0 = physical memory
	Verify    bool           // check C against gonum after the timed region
	Tolerance float64        // verification tolerance (absolute and relative)
}

// DefaultConfig returns the sequential heap-backed configuration for an n×n run.
func DefaultConfig(n int) Config {
	return Config{
		Size:      n,
		Kernel:    matrix.KernelNaive,
		Workers:   matrix.DefaultWorkers,
		Storage:   matrix.DefaultStorage,
		Seed:      DefaultSeed,
		MaxBytes:  0,
		Verify:    false,
		Tolerance: matrix.DefaultVerifyTolerance,
	}
}

// Validate reports the first invalid field.
//
// Errors:
//   - ErrInvalidSize when Size <= 0.
//   - ErrInvalidConfig (wrapping matrix.ErrUnknownKernel / ErrUnknownStorage
//     where relevant) for every other field.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	if _, err := matrix.ParseKernel(c.Kernel.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := matrix.ParseStorage(c.Storage.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidConfig, c.Workers)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("%w: max bytes %d < 0", ErrInvalidConfig, c.MaxBytes)
	}
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance %v", ErrInvalidConfig, c.Tolerance)
	}

	return nil
}

// RequiredBytes returns the buffer bytes of A, B and C together.
// Errors: matrix.ErrInvalidDimensions, matrix.ErrOutOfMemory on overflow.
func (c Config) RequiredBytes() (int64, error) {
	per, err := matrix.BytesFor(c.Size, c.Size)
	if err != nil {
		return 0, err
	}
	if per > math.MaxInt64/matrixCount {
		return 0, fmt.Errorf("%w: %d bytes per matrix overflow int64", matrix.ErrOutOfMemory, per)
	}

	return per * matrixCount, nil
}
