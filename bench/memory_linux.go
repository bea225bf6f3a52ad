// SPDX-License-Identifier: MIT

//go:build linux

package bench

import (
	"fmt"
	"math"

	"golang.org/x/sys/unix"
)

func totalMemory() (int64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, fmt.Errorf("%w: sysinfo: %v", ErrMemoryUnavailable, err)
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1 // kernels before 2.3.23 report bytes
	}
	total := uint64(info.Totalram)
	if total > math.MaxInt64/unit {
		return math.MaxInt64, nil
	}

	return int64(total * unit), nil
}
