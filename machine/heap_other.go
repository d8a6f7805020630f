//go:build !(noos && riscv64)

package machine

import "github.com/SeraphinaAstra/VibeOS/heap"

// Heap is backed by ordinary memory but reports the target's addresses.
var Heap = heap.New(make([]byte, HeapSize), HeapStart)
