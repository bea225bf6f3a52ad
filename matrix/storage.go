// SPDX-License-Identifier: MIT

// Package matrix - element buffers behind Dense.
//
// Purpose:
//   - Size every buffer up front so overflow and byte limits fail before allocation.
//   - Pair each buffer with its release function so Dense.Close is the single exit.
//
// Complexity quicksheet:
//   - BytesFor: O(1); heap allocate: O(n) zero-init by runtime; mmap allocate: O(1) + lazy pages.

package matrix

import (
	"fmt"
	"math"
	"unsafe"
)

// float64Size is the element width used for all byte accounting.
const float64Size = int(unsafe.Sizeof(float64(0)))

// buffer is an owned element slice plus the hook that returns it.
// release is nil for heap buffers; the collector reclaims them once unreferenced.
type buffer struct {
	data    []float64
	release func() error
}

// BytesFor returns the byte size of a rows×cols float64 buffer.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrOutOfMemory when rows*cols*8 does not fit in an int.
//
// AI-Hints:
//   - Callers allocating several matrices should sum BytesFor results and check
//     their limit once, so nothing is allocated when the total is too large.
func BytesFor(rows, cols int) (int64, error) {
	if rows <= 0 || cols <= 0 {
		return 0, ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %d×%d elements overflow int", ErrOutOfMemory, rows, cols)
	}
	n := rows * cols
	if n > math.MaxInt/float64Size {
		return 0, fmt.Errorf("%w: %d elements overflow byte count", ErrOutOfMemory, n)
	}

	return int64(n * float64Size), nil
}

// allocate obtains a zeroed buffer of n elements from the chosen backend.
func allocate(s Storage, n int) (buffer, error) {
	switch s {
	case StorageHeap:
		return buffer{data: make([]float64, n)}, nil // make() zero-fills
	case StorageMmap:
		return mapAnonymous(n)
	default:
		return buffer{}, fmt.Errorf("%w: %v", ErrUnknownStorage, s)
	}
}
