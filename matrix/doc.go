// Package matrix provides the dense matrix and the kernels benchmarked by matbench.
//
// The matrix package provides:
//
//   - Dense: a row-major N×M float64 container backed by one contiguous buffer,
//     either a Go slice (StorageHeap) or an anonymous mapping (StorageMmap).
//     Close releases the buffer exactly once.
//   - Fill: pseudo-random integer fill in [0, 100) from any Source.
//   - Multiply / MultiplyWith: the naive i→j→k product plus three variants:
//     row-parallel and transposed (both bit-identical to naive) and gonum BLAS.
//   - Verify: gonum-based reference check of a computed product.
//
// Errors are package sentinels (errors.go) wrapped with operation tags;
// match them with errors.Is.
package matrix
