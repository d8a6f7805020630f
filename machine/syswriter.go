package machine

import "github.com/SeraphinaAstra/VibeOS/sbi"

// DefaultWrite prints p on the firmware console one character per ecall.
// It does not allocate and is safe to use before anything else is set up.
//
//go:nosplit
func DefaultWrite(fd int, p []byte) int {
	for _, c := range p {
		sbi.ConsolePutchar(c)
	}
	return len(p)
}

type defaultWriter int

const DefaultWriter defaultWriter = 0

func (v defaultWriter) Write(p []byte) (int, error) {
	return DefaultWrite(int(v), p), nil
}

func (v defaultWriter) WriteByte(c byte) error {
	sbi.ConsolePutchar(c)
	return nil
}
