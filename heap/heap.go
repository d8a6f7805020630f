// Package heap implements the kernel's bump allocator.
//
// An Arena hands out consecutive regions of a fixed block of memory by
// advancing a single cursor. Nothing is ever given back: Free only counts
// calls and Realloc always moves. Sizes of earlier allocations are not
// recorded, which is also why Realloc cannot copy the old contents.
//
// An Arena is not safe for concurrent use.
package heap

import (
	"unsafe"

	"github.com/SeraphinaAstra/VibeOS/debug"
)

// Stats are the usage counters reported by the meminfo command.
type Stats struct {
	TotalAllocated int64
	TotalFreed     int64 // never advanced, the arena cannot free
	CurrentUsage   int64
	PeakUsage      int64
	Allocations    int64
	Frees          int64
}

type Arena struct {
	mem    []byte
	start  uintptr
	cursor int
	stats  Stats
}

// New returns an arena carving regions out of mem. start is the address
// mem is reported at, which on the target is its physical address.
func New(mem []byte, start uintptr) *Arena {
	return &Arena{mem: mem, start: start}
}

// Reset rewinds the cursor and clears the counters. Regions handed out
// before must not be used afterwards.
func (a *Arena) Reset() {
	a.cursor = 0
	a.stats = Stats{}
}

// Alloc returns size contiguous unused bytes, or nil if size is not
// positive or the arena cannot hold it. The returned slice's capacity is
// clamped so appending to it never spills into the next region.
func (a *Arena) Alloc(size int) []byte {
	if size <= 0 || size > len(a.mem)-a.cursor {
		return nil
	}
	p := a.mem[a.cursor : a.cursor+size : a.cursor+size]
	a.cursor += size

	a.stats.TotalAllocated += int64(size)
	a.stats.CurrentUsage += int64(size)
	a.stats.Allocations++
	a.stats.PeakUsage = max(a.stats.PeakUsage, a.stats.CurrentUsage)

	debug.Assert(a.cursor <= len(a.mem), "heap: cursor past end")
	debug.Assert(a.stats.CurrentUsage <= a.stats.TotalAllocated, "heap: usage exceeds allocated")
	return p
}

// Realloc returns a fresh region of size bytes. A nil p behaves like
// Alloc. A zero size returns nil and leaves p allocated. The contents of p
// are not carried over.
func (a *Arena) Realloc(p []byte, size int) []byte {
	if p == nil {
		return a.Alloc(size)
	}
	if size == 0 {
		return nil
	}
	return a.Alloc(size)
}

// Free records the release of p. The memory stays in use.
func (a *Arena) Free(p []byte) {
	if p == nil {
		return
	}
	a.stats.Frees++
}

// Zero clears p.
func Zero(p []byte) {
	clear(p)
}

// Available returns the number of bytes left behind the cursor.
func (a *Arena) Available() int { return len(a.mem) - a.cursor }

// Size returns the total size of the arena.
func (a *Arena) Size() int { return len(a.mem) }

func (a *Arena) Start() uintptr  { return a.start }
func (a *Arena) End() uintptr    { return a.start + uintptr(len(a.mem)) }
func (a *Arena) Cursor() uintptr { return a.start + uintptr(a.cursor) }
func (a *Arena) Stats() Stats    { return a.stats }

// Addr returns the address of the region p, or 0 if p was not handed out
// by a.
func (a *Arena) Addr(p []byte) uintptr {
	if len(p) == 0 || len(a.mem) == 0 {
		return 0
	}
	off := uintptr(unsafe.Pointer(unsafe.SliceData(p))) - uintptr(unsafe.Pointer(unsafe.SliceData(a.mem)))
	if off >= uintptr(len(a.mem)) {
		return 0
	}
	return a.start + off
}
