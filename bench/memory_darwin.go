// SPDX-License-Identifier: MIT

//go:build darwin

package bench

import (
	"fmt"
	"math"

	"golang.org/x/sys/unix"
)

func totalMemory() (int64, error) {
	total, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, fmt.Errorf("%w: sysctl hw.memsize: %v", ErrMemoryUnavailable, err)
	}
	if total > math.MaxInt64 {
		return math.MaxInt64, nil
	}

	return int64(total), nil
}
