// SPDX-License-Identifier: MIT

//go:build unix && !darwin

package bench

// maxRSSKiB passes ru_maxrss through; Linux and the BSDs report KiB.
func maxRSSKiB(v int64) int64 { return v }
