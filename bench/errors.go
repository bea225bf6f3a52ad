// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.
// Every message is prefixed with "bench: ..."; callers match with errors.Is.
// Allocation and kernel failures surface the matrix package sentinels unchanged
// (e.g. matrix.ErrOutOfMemory, matrix.ErrVerifyFailed) under a "Run" tag.

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize rejects a non-positive matrix dimension.
	ErrInvalidSize = errors.New("bench: invalid matrix size")

	// ErrInvalidConfig rejects any other out-of-range Config field.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrMemoryUnavailable reports that the OS resource-usage facility is missing or failed.
	// Run treats it as a warning, never as a failure.
	ErrMemoryUnavailable = errors.New("bench: memory usage unavailable")

	// ErrUnknownFormat rejects an output format name outside the supported set.
	ErrUnknownFormat = errors.New("bench: unknown output format")
)

// benchErrorf wraps err with an operation tag, preserving it via %w.
func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
