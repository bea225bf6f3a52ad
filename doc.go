// Package matbench is a small harness for timing dense square matrix
// multiplication.
//
// What is matbench?
//
//	A reproducible "allocate → fill → multiply → report → release" run:
//		• matrix/ - row-major Dense storage (heap or mmap), pseudo-random fill,
//		  the naive i→j→k kernel plus row-parallel, transposed and gonum variants
//		• bench/  - run configuration, phase timeline, getrusage sampling,
//		  text/JSON reports
//		• cmd/matbench - the command-line entry point
//
// Quick example:
//
//	$ matbench -kernel parallel -workers 8 -verify 1500
//
// The naive kernel is the reference: it accumulates every C[i][j] over
// k = 0..N-1 left to right, and the parallel kernel reproduces it bit for bit.
//
//	go install github.com/katalvlaran/matbench/cmd/matbench@latest
package matbench
