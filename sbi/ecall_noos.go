//go:build noos && riscv64

package sbi

// ecall loads a7=ext, a6=fid, a0..a5 and traps into M-mode firmware.
// Implemented in ecall_riscv64.s.
//
//go:noescape
func ecall(ext, fid, a0, a1, a2, a3, a4, a5 uintptr) (err, val uintptr)
