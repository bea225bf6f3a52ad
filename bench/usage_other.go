// SPDX-License-Identifier: MIT

//go:build !unix

package bench

import (
	"fmt"
	"runtime"
)

func readUsage() (Usage, error) {
	return Usage{}, fmt.Errorf("%w: getrusage not supported on %s", ErrMemoryUnavailable, runtime.GOOS)
}
