// SPDX-License-Identifier: MIT

package bench

// TotalMemory returns the host's physical memory in bytes.
// Run uses it as the allocation ceiling when Config.MaxBytes is zero.
// On platforms without a probe it returns ErrMemoryUnavailable.
func TotalMemory() (int64, error) {
	return totalMemory()
}
