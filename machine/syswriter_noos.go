//go:build noos && riscv64

package machine

import _ "unsafe"

// Routes print, println and panic messages of the runtime to the firmware
// console.
//
//go:nowritebarrierrec
//go:nosplit
//go:linkname defaultWrite runtime.defaultWrite
func defaultWrite(fd int, p []byte) int {
	return DefaultWrite(fd, p)
}
