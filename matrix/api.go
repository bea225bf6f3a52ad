// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - On any error the facade closes what it allocated; nothing leaks to the caller.

package matrix

// NewRandomSquare allocates an n×n Dense and fills it from src.
// Composition: NewSquare → Fill. Complexity: O(n^2).
func NewRandomSquare(n int, src Source, opts ...Option) (*Dense, error) {
	m, err := NewSquare(n, opts...)
	if err != nil {
		return nil, err
	}
	if err = Fill(m, src); err != nil {
		_ = m.Close()
		return nil, err
	}

	return m, nil
}

// Product allocates C with shape a.Rows × b.Cols and computes C = A × B with kernel k.
// Allocation options (WithStorage, WithMaxBytes) and kernel options (WithWorkers)
// may be mixed in opts. Complexity: O(r*n*c).
//
// AI-Hints: For timing, preallocate C and call MultiplyWith instead.
func Product(k Kernel, a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyWith, err)
	}
	c, err := NewDense(a.Rows(), b.Cols(), opts...)
	if err != nil {
		return nil, err
	}
	if err = MultiplyWith(k, a, b, c, opts...); err != nil {
		_ = c.Close()
		return nil, err
	}

	return c, nil
}
