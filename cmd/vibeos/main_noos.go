//go:build noos && riscv64

// Command vibeos is the kernel image. Build it with the embedded Go
// toolchain for GOOS=noos GOARCH=riscv64 and load it at 0x80200000 behind
// OpenSBI. A hosted build runs the same shell on the terminal instead.
package main

import (
	"github.com/SeraphinaAstra/VibeOS/kernel"
	"github.com/SeraphinaAstra/VibeOS/machine"
	"github.com/SeraphinaAstra/VibeOS/sbi"
)

func main() {
	kernel.Run(sbi.Console{}, machine.DefaultWriter, machine.Heap)
	for {
		// unreachable, the shell never returns on the target
	}
}
