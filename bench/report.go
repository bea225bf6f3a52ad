// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Format selects how a Report is rendered.
type Format int

const (
	// FormatText prints one "Label: value unit" line per metric.
	FormatText Format = iota
	// FormatJSON prints the whole report as one JSON object.
	FormatJSON
)

var formatNames = [...]string{"text", "json"}

// String returns the flag spelling of f.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat maps a flag spelling back to a Format.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Report is the outcome of one successful run.
type Report struct {
	Size     int
	Kernel   string
	Workers  int // effective goroutines used by the kernel
	Storage  string
	Seed     int64
	Timeline Timeline

	// CPU is user+system time over the total window; zero when unavailable.
	CPU time.Duration
	// PeakRSSKiB is valid only when MemoryAvailable is true.
	PeakRSSKiB      int64
	MemoryAvailable bool
	Verified        bool
}

// jsonReport is the wire shape of FormatJSON; durations are seconds.
type jsonReport struct {
	Size                  int     `json:"size"`
	Kernel                string  `json:"kernel"`
	Workers               int     `json:"workers"`
	Storage               string  `json:"storage"`
	Seed                  int64   `json:"seed"`
	AllocationSeconds     float64 `json:"allocation_seconds"`
	InitializationSeconds float64 `json:"initialization_seconds"`
	ComputationSeconds    float64 `json:"computation_seconds"`
	TotalSeconds          float64 `json:"total_seconds"`
	CPUSeconds            float64 `json:"cpu_seconds"`
	MemoryKB              *int64  `json:"memory_kb"` // null when unavailable
	Verified              bool    `json:"verified"`
}

// Write renders r to w in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// WriteText prints the classic four lines (total, initialization, computation,
// memory), plus a verification line when the run was verified.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Total time: %f seconds\n", r.Timeline.Total().Seconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Initialization time: %f seconds\n", r.Timeline.Initialization().Seconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Computation time: %f seconds\n", r.Timeline.Computation().Seconds()); err != nil {
		return err
	}
	var err error
	if r.MemoryAvailable {
		_, err = fmt.Fprintf(w, "Memory usage: %d kilobytes\n", r.PeakRSSKiB)
	} else {
		_, err = fmt.Fprintln(w, "Memory usage: unavailable")
	}
	if err != nil || !r.Verified {
		return err
	}
	_, err = fmt.Fprintln(w, "Verification: passed")

	return err
}

// WriteJSON prints r as a single JSON object followed by a newline.
func (r *Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		Size:                  r.Size,
		Kernel:                r.Kernel,
		Workers:               r.Workers,
		Storage:               r.Storage,
		Seed:                  r.Seed,
		AllocationSeconds:     r.Timeline.Allocation().Seconds(),
		InitializationSeconds: r.Timeline.Initialization().Seconds(),
		ComputationSeconds:    r.Timeline.Computation().Seconds(),
		TotalSeconds:          r.Timeline.Total().Seconds(),
		CPUSeconds:            r.CPU.Seconds(),
		Verified:              r.Verified,
	}
	if r.MemoryAvailable {
		kb := r.PeakRSSKiB
		out.MemoryKB = &kb
	}

	return json.NewEncoder(w).Encode(out)
}
