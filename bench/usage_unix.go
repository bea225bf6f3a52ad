// SPDX-License-Identifier: MIT

//go:build unix

package bench

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func readUsage() (Usage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Usage{}, fmt.Errorf("%w: getrusage: %v", ErrMemoryUnavailable, err)
	}

	return Usage{
		PeakRSSKiB: maxRSSKiB(int64(ru.Maxrss)),
		CPU:        time.Duration(ru.Utime.Nano() + ru.Stime.Nano()),
	}, nil
}
