package bench_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := bench.DefaultConfig(8)
	require.NoError(t, cfg.Validate())
	require.Equal(t, matrix.KernelNaive, cfg.Kernel)
	require.Equal(t, matrix.StorageHeap, cfg.Storage)
	require.Equal(t, bench.DefaultSeed, cfg.Seed)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*bench.Config)
		want   error
	}{
		{"zero size", func(c *bench.Config) { c.Size = 0 }, bench.ErrInvalidSize},
		{"negative size", func(c *bench.Config) { c.Size = -4 }, bench.ErrInvalidSize},
		{"kernel", func(c *bench.Config) { c.Kernel = matrix.Kernel(9) }, matrix.ErrUnknownKernel},
		{"storage", func(c *bench.Config) { c.Storage = matrix.Storage(9) }, matrix.ErrUnknownStorage},
		{"workers", func(c *bench.Config) { c.Workers = -1 }, bench.ErrInvalidConfig},
		{"max bytes", func(c *bench.Config) { c.MaxBytes = -1 }, bench.ErrInvalidConfig},
		{"nan tolerance", func(c *bench.Config) { c.Tolerance = math.NaN() }, bench.ErrInvalidConfig},
		{"negative tolerance", func(c *bench.Config) { c.Tolerance = -1 }, bench.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := bench.DefaultConfig(4)
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

func TestRequiredBytes(t *testing.T) {
	n, err := bench.DefaultConfig(100).RequiredBytes()
	require.NoError(t, err)
	require.Equal(t, int64(3*100*100*8), n)

	_, err = bench.DefaultConfig(math.MaxInt / 2).RequiredBytes()
	require.ErrorIs(t, err, matrix.ErrOutOfMemory)
}
