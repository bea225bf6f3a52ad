// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of the unexported Options to matrix_test ONLY.
//   - The file name ends in _test.go, so it never reaches production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// OptionsSnapshot mirrors Options with exported fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	Storage        Storage
	MaxBytes       int64
	Workers        int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as NewDense/MultiplyWith do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{
		ValidateNaNInf: o.validateNaNInf,
		Storage:        o.storage,
		MaxBytes:       o.maxBytes,
		Workers:        o.workers,
	}
}
