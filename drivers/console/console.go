// Package console provides the kernel console: byte output, a blocking
// byte input on top of a polled character source, and a line editor.
package console

import (
	"io"
)

// Source is a polled character source, such as the firmware console or
// the keyboard decoder's queue.
type Source interface {
	// TryGetChar returns the next pending character, if any.
	TryGetChar() (byte, bool)
}

// Waiter is implemented by sources that can block until input may be
// pending, so ReadByte need not spin. WaitChar returns an error once the
// source can never produce input again.
type Waiter interface {
	WaitChar() error
}

type Console struct {
	src  Source
	wait Waiter
	out  io.Writer
}

// NewConsole returns a console reading from src and echoing to out.
func NewConsole(src Source, out io.Writer) *Console {
	v := &Console{src: src, out: out}
	v.wait, _ = src.(Waiter)
	return v
}

func (v *Console) Write(p []byte) (n int, err error) {
	return v.out.Write(p)
}

func (v *Console) WriteByte(c byte) error {
	if bw, ok := v.out.(io.ByteWriter); ok {
		return bw.WriteByte(c)
	}
	_, err := v.out.Write([]byte{c})
	return err
}

// WriteString writes s without a trailing newline.
func (v *Console) WriteString(s string) (n int, err error) {
	return io.WriteString(v.out, s)
}

// Puts writes s followed by a newline.
func (v *Console) Puts(s string) error {
	if _, err := v.WriteString(s); err != nil {
		return err
	}
	return v.WriteByte('\n')
}

// ReadByte blocks until the source yields a character. There is no
// timeout; sources that are not Waiters are polled in a busy loop.
func (v *Console) ReadByte() (byte, error) {
	for {
		if c, ok := v.src.TryGetChar(); ok {
			return c, nil
		}
		if v.wait != nil {
			if err := v.wait.WaitChar(); err != nil {
				return 0, err
			}
		}
		// wait
	}
}
