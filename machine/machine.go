// Package machine describes the QEMU virt board as seen from the kernel:
// where RAM is, which part of it backs the heap, and a failsafe writer
// that goes straight to the firmware console.
package machine

// Physical memory map. OpenSBI occupies the start of RAM and jumps to
// KernelStart in S-mode.
const (
	RAMStart    uintptr = 0x8000_0000
	KernelStart uintptr = 0x8020_0000

	HeapStart uintptr = 0x8050_0000
	HeapSize          = 1 << 20
	HeapEnd           = HeapStart + HeapSize
)
