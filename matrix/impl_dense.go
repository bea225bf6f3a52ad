// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own exactly one buffer per matrix and release it exactly once through Close.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot loops (see multiply.go): operate on the flat data slice directly.
//   - Pair every NewDense with `defer m.Close()`; Close is idempotent.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init (heap) or O(1) (mmap); At/Set: O(1); Clone: O(r*c); Close: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxClose = "Close" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - release returns data to its backend; nil for heap buffers.
//   - closed is set once by Close; every accessor checks it.
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int
	data           []float64
	release        func() error
	storage        Storage
	closed         bool
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation, up-front byte
//     accounting and a selectable storage backend.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: size the buffer via BytesFor and check the configured byte limit.
//   - Stage 3: allocate from the backend (zero-filled) and apply numeric policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Nothing is allocated when sizing fails.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: WithStorage, WithMaxBytes, WithValidateNaNInf (others are ignored).
//
// Returns:
//   - *Dense: newly allocated matrix; caller owns it and must Close it.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrOutOfMemory (overflow, byte limit, failed mapping).
//
// Complexity:
//   - Time O(r*c) for heap, Space O(r*c).
//
// AI-Hints:
//   - Use NewSquare for the N×N case; FromRows for literal fixtures.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	size, err := BytesFor(rows, cols)
	if err != nil {
		return nil, err
	}
	if o.maxBytes > 0 && size > o.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes requested, limit %d", ErrOutOfMemory, size, o.maxBytes)
	}

	buf, err := allocate(o.storage, rows*cols)
	if err != nil {
		return nil, err
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf.data,
		release:        buf.release,
		storage:        o.storage,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewSquare returns a zero n×n matrix; see NewDense.
func NewSquare(n int, opts ...Option) (*Dense, error) {
	return NewDense(n, n, opts...)
}

// FromRows builds a Dense by copying a rectangular [][]float64.
// Rows must all share the first row's length; otherwise ErrDimensionMismatch.
// Values pass through Set, so the numeric policy applies.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			_ = m.Close()
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				_ = m.Close()
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the row count. Valid after Close.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Valid after Close.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Storage reports the backend the buffer was allocated from.
func (m *Dense) Storage() Storage { return m.storage }

// Closed reports whether Close has released the buffer.
func (m *Dense) Closed() bool { return m.closed }

// indexOf computes the row-major offset or returns ErrClosed/ErrOutOfRange.
// Returns a bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrClosed after Close; ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (closed, bounds or numeric policy).
//
// Errors:
//   - ErrClosed, ErrOutOfRange, ErrNaNInf (when the policy is on).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep heap copy with the same shape and numeric policy.
// The clone is independent of m's storage backend and lifetime.
//
// Errors:
//   - ErrClosed when m was already closed.
func (m *Dense) Clone() (*Dense, error) {
	if m.closed {
		return nil, fmt.Errorf("Dense.Clone: %w", ErrClosed)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		storage:        StorageHeap,
		validateNaNInf: m.validateNaNInf,
	}, nil
}

// Close releases the element buffer. It is idempotent: the first call returns
// the backend's release error (if any), later calls return nil.
// Shape accessors keep working; element access fails with ErrClosed.
func (m *Dense) Close() error {
	if m == nil || m.closed {
		return nil
	}
	m.closed = true
	m.data = nil
	release := m.release
	m.release = nil
	if release == nil {
		return nil
	}
	if err := release(); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxClose, err)
	}

	return nil
}

// sharesStorage reports whether m and o view the same buffer.
// Dense never hands out sub-slices, so comparing the first element is enough.
func (m *Dense) sharesStorage(o *Dense) bool {
	if m == o {
		return true
	}
	if len(m.data) == 0 || len(o.data) == 0 {
		return false
	}

	return &m.data[0] == &o.data[0]
}

// String renders rows as "[v, v]\n" lines using %g; intended for diagnostics.
func (m *Dense) String() string {
	if m.closed {
		return "Dense(closed)"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
