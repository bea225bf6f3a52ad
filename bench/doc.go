// Package bench drives one matrix-multiplication benchmark run.
//
// A run allocates three N×N matrices, fills A and B from one pseudo-random
// source, multiplies them with the configured kernel and reports phase timings
// plus the process's peak resident set size:
//
//	allocate → fill → multiply → report → release
//
// Run owns every matrix it allocates and releases all of them on every return
// path. Timings use the monotonic wall clock; CPU time and peak RSS come from
// getrusage(RUSAGE_SELF) where the platform provides it. A missing resource
// facility is logged as a warning and never fails the run.
package bench
