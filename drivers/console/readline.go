package console

import (
	"io"

	"github.com/SeraphinaAstra/VibeOS/cstr"
	"github.com/SeraphinaAstra/VibeOS/drivers/keyboard"
)

const (
	backspace = 8
	del       = 127
)

// ReadLine reads one line into buf, echoing as it goes, and returns its
// length. The line ends on CR or LF, on ^C (echoed as "^C") or on ^D.
// Backspace and DEL erase the last character. Printable bytes are
// accepted while there is room left for the terminator, everything else
// is ignored. buf is NUL terminated on return. An empty buf reads nothing
// and returns io.ErrShortBuffer.
func (v *Console) ReadLine(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, io.ErrShortBuffer
	}
	pos := 0
	for {
		c, err := v.ReadByte()
		if err != nil {
			buf[pos] = 0
			return pos, err
		}

		switch {
		case c == keyboard.Interrupt:
			buf[pos] = 0
			_, err = v.WriteString("^C\n")
			return pos, err
		case c == keyboard.EndOfInput:
			buf[pos] = 0
			return pos, v.WriteByte('\n')
		case c == '\r' || c == '\n':
			buf[pos] = 0
			return pos, v.WriteByte('\n')
		case c == del || c == backspace:
			if pos > 0 {
				pos--
				if _, err := v.Write([]byte{backspace, ' ', backspace}); err != nil {
					buf[pos] = 0
					return pos, err
				}
			}
		case cstr.IsPrint(c) && pos < len(buf)-1:
			buf[pos] = c
			pos++
			if err := v.WriteByte(c); err != nil {
				buf[pos] = 0
				return pos, err
			}
		}
	}
}
