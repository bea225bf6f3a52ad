// SPDX-License-Identifier: MIT

package bench

import "time"

// Usage is one sample of the process's resource counters.
type Usage struct {
	PeakRSSKiB int64         // maximum resident set size so far, in KiB
	CPU        time.Duration // user + system CPU time so far
}

// ReadUsage samples getrusage(RUSAGE_SELF).
// On platforms without it, ReadUsage returns ErrMemoryUnavailable.
func ReadUsage() (Usage, error) {
	return readUsage()
}
