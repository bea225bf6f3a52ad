// SPDX-License-Identifier: MIT

//go:build !linux && !darwin

package bench

import (
	"fmt"
	"runtime"
)

func totalMemory() (int64, error) {
	return 0, fmt.Errorf("%w: physical memory probe not supported on %s", ErrMemoryUnavailable, runtime.GOOS)
}
