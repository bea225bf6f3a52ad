// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// seqSource replays a fixed slice of values, then repeats it.
// Int63 % 100 of small values is the value itself, so fixtures read naturally.
type seqSource struct {
	vals []int64
	pos  int
}

func (s *seqSource) Int63() int64 {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}

// MustDense allocates an r×c *Dense, fails the test on error and closes it on cleanup.
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

// MustRows builds a *Dense from literal rows and closes it on cleanup.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// RequireCells asserts every cell of m equals want exactly.
func RequireCells(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols())
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "cell [%d,%d]", i, j)
		}
	}
}

// RequireSameBits asserts a and b hold identical float64 values cell by cell.
func RequireSameBits(t testing.TB, a, b matrix.Matrix) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			require.Equalf(t, MustAt(t, a, i, j), MustAt(t, b, i, j), "cell [%d,%d]", i, j)
		}
	}
}

// naiveSum recomputes Σ_k A[i][k]·B[k][j] through the public accessors.
func naiveSum(t testing.TB, a, b matrix.Matrix, i, j int) float64 {
	t.Helper()
	sum := 0.0
	for k := 0; k < a.Cols(); k++ {
		sum += MustAt(t, a, i, k) * MustAt(t, b, k, j)
	}
	return sum
}

// mustRandom allocates an n×n matrix filled from seed.
func mustRandom(t testing.TB, n int, seed int64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandomSquare(n, matrix.NewSource(seed), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}
