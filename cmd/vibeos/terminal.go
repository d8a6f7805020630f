//go:build !(noos && riscv64)

package main

import (
	"io"

	"github.com/mattn/go-tty"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/SeraphinaAstra/VibeOS/drivers/console"
)

// quitKey (Ctrl-]) closes the terminal source, like telnet's escape.
const quitKey = 0x1d

// terminal stands in for the firmware console: raw keystrokes from the
// controlling tty, reduced to ASCII, and output with LF expanded to CRLF.
type terminal struct {
	tty     *tty.TTY
	restore func() error
	out     io.Writer
	enc     *encoding.Encoder

	runes   chan rune
	err     error // valid once runes is closed
	pending []byte
}

func openTerminal() (*terminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	restore, err := t.Raw()
	if err != nil {
		t.Close()
		return nil, err
	}
	term := &terminal{
		tty:     t,
		restore: restore,
		out:     transform.NewWriter(t.Output(), console.ASCII.NewDecoder()),
		enc:     console.ASCII.NewEncoder(),
		runes:   make(chan rune, 16),
	}
	go term.read()
	return term, nil
}

func (t *terminal) read() {
	defer close(t.runes)
	for {
		r, err := t.tty.ReadRune()
		if err != nil {
			t.err = err
			return
		}
		if r == quitKey {
			t.err = io.EOF
			return
		}
		t.runes <- r
	}
}

func (t *terminal) accept(r rune) {
	b, err := t.enc.Bytes([]byte(string(r)))
	if err != nil {
		return
	}
	t.pending = append(t.pending, b...)
}

func (t *terminal) TryGetChar() (byte, bool) {
	if len(t.pending) == 0 {
		select {
		case r, ok := <-t.runes:
			if !ok {
				return 0, false
			}
			t.accept(r)
		default:
			return 0, false
		}
	}
	if len(t.pending) == 0 {
		return 0, false
	}
	c := t.pending[0]
	t.pending = t.pending[1:]
	return c, true
}

// WaitChar blocks until a keystroke arrives.
func (t *terminal) WaitChar() error {
	if len(t.pending) > 0 {
		return nil
	}
	r, ok := <-t.runes
	if !ok {
		return t.err
	}
	t.accept(r)
	return nil
}

func (t *terminal) Write(p []byte) (n int, err error) {
	for len(p) > 0 {
		i := 0
		for i < len(p) && p[i] != '\n' {
			i++
		}
		m, err := t.out.Write(p[:i])
		n += m
		if err != nil || i == len(p) {
			return n, err
		}
		if _, err := io.WriteString(t.out, "\r\n"); err != nil {
			return n, err
		}
		n++
		p = p[i+1:]
	}
	return n, nil
}

func (t *terminal) Close() error {
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
	return t.tty.Close()
}
