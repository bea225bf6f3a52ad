// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernels benchmarked by matbench.
// All kernels perform strict fail-fast validation (ValidateProduct) and write
// into a caller-owned output, so allocation stays outside the timed region.
//
// Purpose:
//   - KernelNaive: reference i→j→k triple loop with left-to-right accumulation.
//   - KernelParallel: the same loop over disjoint row ranges on W goroutines.
//   - KernelGonum: BLAS-backed product (see gonum.go).
//   - KernelTransposed: naive summation order over a transposed copy of B.
//
// Notes:
//   - Naive, parallel and transposed produce bit-identical results: every C[i][j]
//     is summed over k = 0..n-1 in the same order by exactly one goroutine.

package matrix

import (
	"fmt"
	"runtime"
	"sync"
)

// ZeroSum is the initial value of every accumulated output cell.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMultiply     = "Multiply"
	opMultiplyWith = "MultiplyWith"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply computes C = A × B into c with the naive kernel.
// MAIN DESCRIPTION:
//   - C[i][j] = Σ_k A[i][k]·B[k][j] for every (i, j).
//
// Implementation:
//   - Stage 1: ValidateProduct(a, b, c).
//   - Stage 2: *Dense fast path over flat slices; otherwise At/Set fallback.
//
// Behavior highlights:
//   - Each output cell starts from ZeroSum before accumulation; prior contents of c are ignored.
//   - Loop order is i-outer, j-middle, k-inner; k runs 0..n-1 left to right.
//   - Operands are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrClosed, ErrDimensionMismatch, ErrAliasedOutput.
//
// Complexity:
//   - Time O(r*n*c), Space O(1) beyond c.
//
// AI-Hints:
//   - B is walked with stride Cols(); this is the cache-unfriendly access the benchmark measures.
func Multiply(a, b, c Matrix) error {
	if err := ValidateProduct(a, b, c); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if da, db, dc, ok := denseOperands(a, b, c); ok {
		multiplyRows(da, db, dc, 0, dc.r)
		return nil
	}

	return multiplyGeneric(a, b, c)
}

// MultiplyWith dispatches C = A × B to the selected kernel.
//
// Inputs:
//   - k: KernelNaive, KernelParallel, KernelGonum or KernelTransposed.
//   - opts: WithWorkers for KernelParallel; ignored otherwise.
//
// Errors:
//   - ErrUnknownKernel, plus everything Multiply returns.
//
// Notes:
//   - KernelParallel and KernelTransposed fall back to the sequential At/Set
//     path for non-Dense operands; foreign Set implementations are not assumed
//     goroutine-safe.
func MultiplyWith(k Kernel, a, b, c Matrix, opts ...Option) error {
	switch k {
	case KernelNaive:
		return Multiply(a, b, c)
	case KernelParallel:
		if err := ValidateProduct(a, b, c); err != nil {
			return matrixErrorf(opMultiplyWith, err)
		}
		da, db, dc, ok := denseOperands(a, b, c)
		if !ok {
			return multiplyGeneric(a, b, c)
		}
		multiplyParallel(da, db, dc, gatherOptions(opts...).workers)
		return nil
	case KernelGonum:
		return multiplyGonum(a, b, c)
	case KernelTransposed:
		if err := ValidateProduct(a, b, c); err != nil {
			return matrixErrorf(opMultiplyWith, err)
		}
		da, db, dc, ok := denseOperands(a, b, c)
		if !ok {
			return multiplyGeneric(a, b, c)
		}
		multiplyTransposed(da, db, dc)
		return nil
	default:
		return matrixErrorf(opMultiplyWith, fmt.Errorf("%w: %v", ErrUnknownKernel, k))
	}
}

// denseOperands unwraps all three operands when each is a *Dense.
func denseOperands(a, b, c Matrix) (da, db, dc *Dense, ok bool) {
	if da, ok = a.(*Dense); !ok {
		return nil, nil, nil, false
	}
	if db, ok = b.(*Dense); !ok {
		return nil, nil, nil, false
	}
	if dc, ok = c.(*Dense); !ok {
		return nil, nil, nil, false
	}

	return da, db, dc, true
}

// multiplyRows writes output rows [lo, hi) of C = A × B.
// da.data layout: i*inner + k; db.data layout: k*cols + j; dc.data layout: i*cols + j.
func multiplyRows(da, db, dc *Dense, lo, hi int) {
	inner, cols := da.c, dc.c
	bData := db.data
	var (
		i, j, k int
		sum     float64
	)
	for i = lo; i < hi; i++ {
		rowA := da.data[i*inner : (i+1)*inner]
		rowC := dc.data[i*cols : (i+1)*cols]
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += rowA[k] * bData[k*cols+j]
			}
			rowC[j] = sum
		}
	}
}

// multiplyParallel partitions output rows into contiguous bands, one per worker,
// and waits for all bands before returning. workers<=0 means GOMAXPROCS.
func multiplyParallel(da, db, dc *Dense, workers int) {
	rows := dc.r
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}
	if workers == 1 {
		multiplyRows(da, db, dc, 0, rows)
		return
	}

	band := (rows + workers - 1) / workers // ceil; last band may be short
	var wg sync.WaitGroup
	for lo := 0; lo < rows; lo += band {
		hi := min(lo+band, rows)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			multiplyRows(da, db, dc, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// multiplyTransposed materializes Bᵀ once (O(n·c) scratch) and then walks
// rows of A and rows of Bᵀ with unit stride. k still runs 0..inner-1 left to
// right, so every cell matches multiplyRows exactly.
func multiplyTransposed(da, db, dc *Dense) {
	inner, cols := da.c, dc.c
	bt := make([]float64, inner*cols)
	for k := 0; k < inner; k++ {
		rowB := db.data[k*cols : (k+1)*cols]
		for j, v := range rowB {
			bt[j*inner+k] = v
		}
	}

	var sum float64
	for i := 0; i < dc.r; i++ {
		rowA := da.data[i*inner : (i+1)*inner]
		rowC := dc.data[i*cols : (i+1)*cols]
		for j := 0; j < cols; j++ {
			colB := bt[j*inner : (j+1)*inner]
			sum = ZeroSum
			for k, av := range rowA {
				sum += av * colB[k]
			}
			rowC[j] = sum
		}
	}
}

// multiplyGeneric is the interface fallback with the same i→j→k order.
func multiplyGeneric(a, b, c Matrix) error {
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	var (
		av, bv, sum float64
		err         error
	)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum = ZeroSum
			for k := 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return matrixErrorf(opMultiply, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return matrixErrorf(opMultiply, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv
			}
			if err = c.Set(i, j, sum); err != nil {
				return matrixErrorf(opMultiply, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}
