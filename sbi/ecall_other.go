//go:build !(noos && riscv64)

package sbi

// Firmware stands in for the M-mode firmware when not running on the
// target, so the gateway's register contract can be exercised on a host.
type Firmware interface {
	Ecall(ext, fid uintptr, args [6]uintptr) (err, val uintptr)
}

var firmware Firmware

// SetFirmware installs f as the receiver of all ecalls and returns the
// previous one. With no firmware installed every call fails with
// ErrNotSupported.
func SetFirmware(f Firmware) (prev Firmware) {
	prev, firmware = firmware, f
	return
}

func ecall(ext, fid, a0, a1, a2, a3, a4, a5 uintptr) (err, val uintptr) {
	if firmware == nil {
		return notSupported, 0
	}
	return firmware.Ecall(ext, fid, [6]uintptr{a0, a1, a2, a3, a4, a5})
}

// ErrNotSupported as it appears in a0.
const notSupported = ^uintptr(1)
