// SPDX-License-Identifier: MIT

package bench

import "time"

// Timeline holds the instants a run records, in the order they are taken.
//
//	RunStart ─alloc─ Allocated, TotalStart ─fill─ Initialized, ComputeStart ─multiply─ Computed, TotalEnd
//
// TotalStart is taken right after allocation, immediately before the first
// fill, so the total and initialization windows both open at the fill.
type Timeline struct {
	RunStart     time.Time
	Allocated    time.Time
	TotalStart   time.Time
	Initialized  time.Time
	ComputeStart time.Time
	Computed     time.Time
	TotalEnd     time.Time
}

// Allocation is the time spent obtaining A, B and C.
func (tl Timeline) Allocation() time.Duration { return tl.Allocated.Sub(tl.RunStart) }

// Initialization is Initialized − TotalStart: filling A and B.
func (tl Timeline) Initialization() time.Duration { return tl.Initialized.Sub(tl.TotalStart) }

// Computation is the time spent inside the multiplication kernel.
func (tl Timeline) Computation() time.Duration { return tl.Computed.Sub(tl.ComputeStart) }

// Total spans fill and multiply; allocation is excluded.
func (tl Timeline) Total() time.Duration { return tl.TotalEnd.Sub(tl.TotalStart) }
