// Package sbi is the trap gateway to the RISC-V Supervisor Binary Interface
// firmware (OpenSBI on the QEMU virt machine). Only the legacy console
// extension is used: one call prints a character, the other polls for one.
package sbi

// Legacy extension IDs, passed in a7.
const (
	ExtConsolePutchar = 0x01
	ExtConsoleGetchar = 0x02
)

// Standard SBI error codes as returned in a0.
const (
	Success           = 0
	ErrFailed         = -1
	ErrNotSupported   = -2
	ErrInvalidParam   = -3
	ErrDenied         = -4
	ErrInvalidAddr    = -5
	ErrAlreadyAvail   = -6
	ErrAlreadyStart   = -7
	ErrAlreadyStopped = -8
)

// Ret holds the a0/a1 pair an ecall hands back.
type Ret struct {
	Error int64
	Value int64
}

// Call issues a single ecall with extension ext and function fid. At most
// six arguments are passed, in a0..a5.
func Call(ext, fid int, args ...uintptr) Ret {
	var a [6]uintptr
	copy(a[:], args)
	e, v := ecall(uintptr(ext), uintptr(fid), a[0], a[1], a[2], a[3], a[4], a[5])
	return Ret{Error: int64(e), Value: int64(v)}
}

// ConsolePutchar prints c on the firmware console. Fire and forget.
//
//go:nosplit
func ConsolePutchar(c byte) {
	ecall(ExtConsolePutchar, 0, uintptr(c), 0, 0, 0, 0, 0)
}

// ConsoleGetchar returns the next pending input character or -1 if there is
// none. The legacy extension reports the character in a0, not a1.
//
//go:nosplit
func ConsoleGetchar() int {
	e, _ := ecall(ExtConsoleGetchar, 0, 0, 0, 0, 0, 0, 0)
	return int(int64(e))
}

// Console is the firmware console as a byte source and sink.
type Console struct{}

// TryGetChar polls the firmware once.
func (Console) TryGetChar() (byte, bool) {
	c := ConsoleGetchar()
	if c < 0 {
		return 0, false
	}
	return byte(c), true
}

func (Console) WriteByte(c byte) error {
	ConsolePutchar(c)
	return nil
}

func (Console) Write(p []byte) (int, error) {
	for _, c := range p {
		ConsolePutchar(c)
	}
	return len(p), nil
}
