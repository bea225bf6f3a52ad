// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, kernels and the benchmark
// driver. Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "fmt"

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept Matrix and unlock flat-slice fast paths when given *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}

// Source is the pseudo-random stream consumed by Fill.
// math/rand.Source and *math/rand.Rand both satisfy it.
type Source interface {
	Int63() int64
}

// Kernel selects a multiplication strategy for MultiplyWith.
type Kernel int

const (
	// KernelNaive is the reference i→j→k scalar triple loop.
	KernelNaive Kernel = iota
	// KernelParallel splits output rows across worker goroutines; bit-identical to KernelNaive.
	KernelParallel
	// KernelGonum delegates to gonum's BLAS-backed (*mat.Dense).Mul.
	KernelGonum
	// KernelTransposed multiplies against a transposed copy of B so both operands
	// are read along rows; bit-identical to KernelNaive.
	KernelTransposed
)

// kernelNames is indexed by Kernel; order MUST follow the const block.
var kernelNames = [...]string{"naive", "parallel", "gonum", "transposed"}

// String returns the flag spelling of k.
func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}

	return kernelNames[k]
}

// ParseKernel maps a flag spelling back to a Kernel.
func ParseKernel(name string) (Kernel, error) {
	for i, n := range kernelNames {
		if n == name {
			return Kernel(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// Storage selects where a Dense keeps its element buffer.
type Storage int

const (
	// StorageHeap keeps elements in a Go slice owned by the garbage collector.
	StorageHeap Storage = iota
	// StorageMmap keeps elements in an anonymous private mapping released on Close.
	StorageMmap
)

var storageNames = [...]string{"heap", "mmap"}

// String returns the flag spelling of s.
func (s Storage) String() string {
	if s < 0 || int(s) >= len(storageNames) {
		return fmt.Sprintf("Storage(%d)", int(s))
	}

	return storageNames[s]
}

// ParseStorage maps a flag spelling back to a Storage.
func ParseStorage(name string) (Storage, error) {
	for i, n := range storageNames {
		if n == name {
			return Storage(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStorage, name)
}
