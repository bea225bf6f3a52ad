// SPDX-License-Identifier: MIT

// Package matrix - gonum interop: BLAS-backed kernel and reference verification.
//
// Purpose:
//   - KernelGonum: run the product through gonum's (*mat.Dense).Mul on the
//     existing Dense buffers (no copies for *Dense operands).
//   - Verify: recompute A × B with gonum and compare cell by cell.
//
// Notes:
//   - gonum's summation order differs from the naive kernel; results agree
//     within tolerance, not bit for bit. Integer-valued fills keep products
//     exact while n·99² stays below 2^53.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// DefaultVerifyTolerance is the absolute and relative tolerance used by Verify callers.
const DefaultVerifyTolerance = 1e-9

const (
	opGonum  = "MultiplyGonum"
	opVerify = "Verify"
)

// toGonum exposes m as a *mat.Dense. *Dense buffers are shared, not copied.
func toGonum(m Matrix) (*mat.Dense, error) {
	if d, ok := m.(*Dense); ok {
		return mat.NewDense(d.r, d.c, d.data), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// multiplyGonum computes C = A × B with gonum.
// For a *Dense output the product is written straight into its buffer.
func multiplyGonum(a, b, c Matrix) error {
	if err := ValidateProduct(a, b, c); err != nil {
		return matrixErrorf(opGonum, err)
	}
	ga, err := toGonum(a)
	if err != nil {
		return matrixErrorf(opGonum, err)
	}
	gb, err := toGonum(b)
	if err != nil {
		return matrixErrorf(opGonum, err)
	}

	if dc, ok := c.(*Dense); ok {
		dst := mat.NewDense(dc.r, dc.c, dc.data)
		dst.Mul(ga, gb)
		return nil
	}

	var out mat.Dense
	out.Mul(ga, gb)
	rows, cols := out.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = c.Set(i, j, out.At(i, j)); err != nil {
				return matrixErrorf(opGonum, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// Verify checks c against a gonum-computed A × B.
// MAIN DESCRIPTION:
//   - Independent oracle for any kernel's output.
//
// Implementation:
//   - Stage 1: ValidateProduct(a, b, c).
//   - Stage 2: reference product into a fresh gonum matrix.
//   - Stage 3: compare i→j with scalar.EqualWithinAbsOrRel(got, want, tol, tol).
//
// Behavior highlights:
//   - Reports the first differing cell (row-major order).
//   - tol is treated as |tol|; NaN tolerance is rejected with ErrNaNInf.
//
// Errors:
//   - Validation sentinels, ErrNaNInf, ErrVerifyFailed.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the reference.
func Verify(a, b, c Matrix, tol float64) error {
	if err := ValidateProduct(a, b, c); err != nil {
		return matrixErrorf(opVerify, err)
	}
	if math.IsNaN(tol) {
		return matrixErrorf(opVerify, ErrNaNInf)
	}
	tol = math.Abs(tol)

	ga, err := toGonum(a)
	if err != nil {
		return matrixErrorf(opVerify, err)
	}
	gb, err := toGonum(b)
	if err != nil {
		return matrixErrorf(opVerify, err)
	}
	var want mat.Dense
	want.Mul(ga, gb)

	rows, cols := c.Rows(), c.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			got, err := c.At(i, j)
			if err != nil {
				return matrixErrorf(opVerify, err)
			}
			if w := want.At(i, j); !scalar.EqualWithinAbsOrRel(got, w, tol, tol) {
				return matrixErrorf(opVerify, fmt.Errorf("%w: C[%d][%d]=%g, want %g", ErrVerifyFailed, i, j, got, w))
			}
		}
	}

	return nil
}
