package main

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/katalvlaran/matbench/bench"
	"github.com/stretchr/testify/require"
)

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestUsageOnWrongArgCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"10", "8"},
		{"-kernel", "naive"},
		{"10", "-v"}, // flags after the size are positional
	} {
		code, out, _ := runCLI(args...)
		require.Equal(t, exitError, code, "args %q", args)
		require.Contains(t, out, "Usage: matbench [flags] <matrix_size>")
	}
}

func TestInvalidSize(t *testing.T) {
	for _, arg := range []string{"0", "-5", "abc", "1.5", ""} {
		code, out, _ := runCLI("--", arg)
		require.Equal(t, exitError, code, "arg %q", arg)
		require.Equal(t, msgInvalidSize+"\n", out)
	}
}

func TestNegativeSizeWithoutSeparator(t *testing.T) {
	for _, args := range [][]string{
		{"-5"},
		{"-0"},
		{"-v", "-5"},
		{"-kernel", "parallel", "-12"},
		{"-seed=3", "-1"},
	} {
		code, out, _ := runCLI(args...)
		require.Equal(t, exitError, code, "args %q", args)
		require.Equal(t, msgInvalidSize+"\n", out, "args %q", args)
	}

	// A negative value of a flag is not mistaken for the size.
	code, out, stderr := runCLI("-seed", "-5", "4")
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, out, "Total time:")

	// Extra positionals still take the usage path.
	code, out, _ = runCLI("-5", "10")
	require.Equal(t, exitError, code)
	require.Contains(t, out, "Usage: matbench [flags] <matrix_size>")
}

func TestTextReport(t *testing.T) {
	code, out, stderr := runCLI("8")
	require.Equal(t, exitOK, code, stderr)

	pattern := regexp.MustCompile(`^Total time: \d+\.\d{6} seconds
Initialization time: \d+\.\d{6} seconds
Computation time: \d+\.\d{6} seconds
Memory usage: (\d+ kilobytes|unavailable)
$`)
	require.Regexp(t, pattern, out)
}

func TestJSONReportWithFlags(t *testing.T) {
	code, out, stderr := runCLI("-kernel", "parallel", "-threads", "2", "-storage", "mmap",
		"-seed", "7", "-verify", "-format", "json", "12")
	require.Equal(t, exitOK, code, stderr)

	var rep struct {
		Size     int    `json:"size"`
		Kernel   string `json:"kernel"`
		Workers  int    `json:"workers"`
		Storage  string `json:"storage"`
		Seed     int64  `json:"seed"`
		Verified bool   `json:"verified"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, 12, rep.Size)
	require.Equal(t, "parallel", rep.Kernel)
	require.Equal(t, 2, rep.Workers)
	require.Equal(t, "mmap", rep.Storage)
	require.Equal(t, int64(7), rep.Seed)
	require.True(t, rep.Verified)
}

func TestGonumKernelVerified(t *testing.T) {
	code, out, stderr := runCLI("-kernel", "gonum", "-verify", "16")
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, out, "Verification: passed")
}

func TestBadFlagValues(t *testing.T) {
	for _, args := range [][]string{
		{"-kernel", "strassen", "4"},
		{"-storage", "disk", "4"},
		{"-format", "yaml", "4"},
		{"-nope", "4"},
	} {
		code, _, _ := runCLI(args...)
		require.Equal(t, exitError, code, "args %q", args)
	}
}

func TestRuntimeFailureIsLogged(t *testing.T) {
	code, out, stderr := runCLI("-max-mem", "100", "64")
	require.Equal(t, exitError, code)
	require.Empty(t, out)
	require.Contains(t, stderr, "benchmark failed")
	require.Contains(t, stderr, "out of memory")

	code, _, stderr = runCLI("-workers", "-2", "4")
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, "invalid config")
}

func TestSizeBeyondPhysicalMemory(t *testing.T) {
	if _, err := bench.TotalMemory(); err != nil {
		t.Skipf("physical memory probe unavailable: %v", err)
	}
	// 3 × (2^20)² × 8 bytes = 24 TiB, refused before any allocation.
	code, out, stderr := runCLI("1048576")
	require.Equal(t, exitError, code)
	require.Empty(t, out)
	require.Contains(t, stderr, "benchmark failed")
	require.Contains(t, stderr, "out of memory")
}

func TestVerboseLogging(t *testing.T) {
	code, _, stderr := runCLI("-v", "4")
	require.Equal(t, exitOK, code)
	require.Contains(t, stderr, "product computed")
}

func TestHelp(t *testing.T) {
	code, out, _ := runCLI("-h")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "-kernel")
}
