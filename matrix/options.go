// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for allocation and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Allocation options (storage, byte limit, numeric policy) are read by NewDense.
//   - Kernel options (workers) are read by MultiplyWith; other consumers ignore them.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultStorage is the buffer backend used by NewDense.
	DefaultStorage = StorageHeap

	// DefaultMaxBytes disables the per-allocation byte limit when zero.
	DefaultMaxBytes int64 = 0

	// DefaultWorkers resolves to runtime.GOMAXPROCS(0) in the parallel kernel.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid  = "matrix: WithWorkers: workers must be >= 0"
	panicMaxBytesInvalid = "matrix: WithMaxBytes: limit must be >= 0"
	panicStorageInvalid  = "matrix: WithStorage: unknown storage"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	storage        Storage // DefaultStorage
	maxBytes       int64   // DefaultMaxBytes; 0 = unlimited
	workers        int     // DefaultWorkers; 0 = GOMAXPROCS
}

// WithValidateNaNInf sets the numeric policy of newly created matrices.
// When enabled, Set rejects NaN and ±Inf with ErrNaNInf.
// Complexity: O(1).
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// WithStorage selects the buffer backend for newly created matrices.
//
// Behavior highlights:
//   - StorageHeap: plain Go slice.
//   - StorageMmap: anonymous mapping, returned to the OS by Close.
//
// Errors:
//   - Panics on a Storage value outside the declared constants.
//
// AI-Hints:
//   - Use ParseStorage on user input first; it returns ErrUnknownStorage instead of panicking.
func WithStorage(s Storage) Option {
	if s < 0 || int(s) >= len(storageNames) {
		panic(panicStorageInvalid)
	}

	return func(o *Options) { o.storage = s }
}

// WithMaxBytes caps the size of a single element buffer; 0 disables the cap.
// Allocations above the cap fail with ErrOutOfMemory before touching memory.
func WithMaxBytes(limit int64) Option {
	if limit < 0 {
		panic(panicMaxBytesInvalid)
	}

	return func(o *Options) { o.maxBytes = limit }
}

// WithWorkers sets the goroutine count for KernelParallel; 0 means GOMAXPROCS.
// The effective count is clamped to the number of output rows.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		storage:        DefaultStorage,
		maxBytes:       DefaultMaxBytes,
		workers:        DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
