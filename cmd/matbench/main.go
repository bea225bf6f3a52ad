// Command matbench times a naive dense N×N matrix multiplication.
//
// Usage:
//
//	matbench [flags] <matrix_size>
//
// It allocates A, B and C, fills A and B with pseudo-random integers in
// [0, 100), computes C = A × B and prints the total, initialization and
// computation times together with the peak resident set size:
//
//	$ matbench 1500
//	Total time: 9.512374 seconds
//	Initialization time: 0.021930 seconds
//	Computation time: 9.490444 seconds
//	Memory usage: 55880 kilobytes
//
// Flags must precede the size. A negative size is reported as invalid, not
// as an unknown flag. When -max-mem is not given, the three matrices must fit
// in physical memory. Exit status is 0 on success and 1 on any
// usage, validation or runtime error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/rs/zerolog"
)

const (
	exitOK    = 0
	exitError = 1

	msgInvalidSize = "Invalid matrix size. Please enter a positive integer."
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("matbench", flag.ContinueOnError)
	fs.SetOutput(stdout)

	var (
		kernelName  = fs.String("kernel", matrix.KernelNaive.String(), "multiplication kernel: naive, parallel, gonum or transposed")
		workers     = fs.Int("workers", matrix.DefaultWorkers, "goroutines for the parallel kernel (0 = GOMAXPROCS)")
		seed        = fs.Int64("seed", bench.DefaultSeed, "fill seed (0 = derive from the clock)")
		storageName = fs.String("storage", matrix.DefaultStorage.String(), "matrix storage: heap or mmap")
		maxMem      = fs.Int64("max-mem", 0, "fail if the three matrices need more than this many bytes (0 = physical memory)")
		verify      = fs.Bool("verify", false, "check the product against gonum after timing")
		formatName  = fs.String("format", bench.FormatText.String(), "report format: text or json")
		verbose     = fs.Bool("v", false, "debug logging on stderr")
	)
	fs.IntVar(workers, "threads", matrix.DefaultWorkers, "alias for -workers")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <matrix_size>\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(sizeAsPositional(fs, args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError // flag already printed the error and usage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitError
	}

	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil || n <= 0 {
		fmt.Fprintln(stdout, msgInvalidSize)
		return exitError
	}

	cfg := bench.DefaultConfig(n)
	cfg.Workers, cfg.Seed, cfg.MaxBytes, cfg.Verify = *workers, *seed, *maxMem, *verify
	if cfg.Kernel, err = matrix.ParseKernel(*kernelName); err != nil {
		fmt.Fprintln(stdout, err)
		return exitError
	}
	if cfg.Storage, err = matrix.ParseStorage(*storageName); err != nil {
		fmt.Fprintln(stdout, err)
		return exitError
	}
	format, err := bench.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return exitError
	}

	logger := newLogger(stderr, *verbose)
	rep, err := bench.Run(cfg, bench.WithLogger(logger))
	if err != nil {
		if errors.Is(err, bench.ErrInvalidSize) {
			fmt.Fprintln(stdout, msgInvalidSize)
			return exitError
		}
		logger.Error().Err(err).Int("n", n).Msg("benchmark failed")
		return exitError
	}
	if err = rep.Write(stdout, format); err != nil {
		logger.Error().Err(err).Msg("write report")
		return exitError
	}

	return exitOK
}

// sizeAsPositional inserts "--" before the first argument in flag position
// that is a negative integer, so "-5" reaches the size check instead of
// failing as an undefined flag. Values consumed by non-bool flags
// ("-seed -5 10") are left alone.
func sizeAsPositional(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			return args
		}
		if _, err := strconv.Atoi(arg); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++ // skip the flag's value
		}
	}

	return args
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// newLogger builds the human-readable stderr logger: warn by default, debug with -v.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}

	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
