// SPDX-License-Identifier: MIT

//go:build darwin

package bench

// maxRSSKiB converts ru_maxrss, which darwin reports in bytes.
func maxRSSKiB(v int64) int64 { return v / 1024 }
