// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that an empty option list resolves to the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
	require.Equal(t, matrix.DefaultStorage, o.Storage)
	require.Equal(t, matrix.DefaultMaxBytes, o.MaxBytes)
	require.Equal(t, matrix.DefaultWorkers, o.Workers)
}

// TestOptions_LastWriterWins checks setters apply in order.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithWorkers(2),
		matrix.WithStorage(matrix.StorageMmap),
		matrix.WithMaxBytes(1<<20),
		matrix.WithValidateNaNInf(false),
		matrix.WithWorkers(6),
		matrix.WithStorage(matrix.StorageHeap),
	)
	require.Equal(t, 6, o.Workers)
	require.Equal(t, matrix.StorageHeap, o.Storage)
	require.Equal(t, int64(1<<20), o.MaxBytes)
	require.False(t, o.ValidateNaNInf)
}
