// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// mapAnonymous backs n float64 elements with an anonymous private mapping.
// The kernel hands out zeroed, page-aligned memory, so the float64 view needs
// no extra initialization or alignment fix-up. release unmaps the region.
func mapAnonymous(n int) (buffer, error) {
	region, err := mmap.MapRegion(nil, n*float64Size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return buffer{}, fmt.Errorf("%w: mmap %d bytes: %v", ErrOutOfMemory, n*float64Size, err)
	}
	data := unsafe.Slice((*float64)(unsafe.Pointer(&region[0])), n)

	return buffer{data: data, release: region.Unmap}, nil
}
