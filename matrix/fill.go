// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
)

// FillModulus bounds generated cell values to [0, FillModulus).
const FillModulus = 100

const opFill = "Fill"

// NewSource returns a deterministic pseudo-random source for Fill.
// Equal seeds yield equal matrices.
func NewSource(seed int64) Source {
	return rand.NewSource(seed)
}

// Fill overwrites every cell of m with float64(src.Int63() % FillModulus).
// MAIN DESCRIPTION:
//   - Populate a matrix with small non-negative integers stored as float64.
//
// Implementation:
//   - Stage 1: validate m (non-nil, open) and src (non-nil).
//   - Stage 2: draw one value per cell in row-major order (i→j).
//
// Behavior highlights:
//   - Filling A then B from one source consumes the stream in A-then-B order,
//     so a fixed seed reproduces both operands.
//
// Errors:
//   - ErrNilMatrix, ErrClosed, ErrNilSource.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Fill(m Matrix, src Source) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	if err := ValidateOpen(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	if src == nil {
		return matrixErrorf(opFill, ErrNilSource)
	}

	if d, ok := m.(*Dense); ok {
		for i := range d.data {
			d.data[i] = float64(src.Int63() % FillModulus)
		}
		return nil
	}

	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := m.Set(i, j, float64(src.Int63()%FillModulus)); err != nil {
				return matrixErrorf(opFill, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}
