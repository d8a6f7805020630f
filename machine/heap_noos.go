//go:build noos && riscv64

package machine

import (
	"unsafe"

	"github.com/SeraphinaAstra/VibeOS/heap"
)

// Heap overlays the physical heap region. The runtime's own allocator must
// be configured to stay below HeapStart.
var Heap = heap.New(unsafe.Slice((*byte)(unsafe.Pointer(HeapStart)), HeapSize), HeapStart)
