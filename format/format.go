// Package format renders printf-style templates for the kernel console.
//
// Templates know five directives (%d %x %s %c %%) and four escapes (\n \r
// \t \\). There is no width, padding or precision; anything unrecognized is
// copied through literally. Arguments are type tagged and counted, so a
// template that asks for more or different arguments than supplied yields
// an inline marker plus an error instead of reading garbage.
package format

import (
	"errors"
	"io"

	"golang.org/x/exp/constraints"
)

var (
	ErrShortBuffer = errors.New("format: output truncated")
	ErrMissingArg  = errors.New("format: missing argument")
	ErrArgType     = errors.New("format: argument type mismatch")
	ErrExtraArgs   = errors.New("format: too many arguments")
)

const digits = "0123456789abcdef"

// Sprint renders tmpl into buf and terminates it with a NUL. It returns the
// number of bytes produced, not counting the terminator. If the output does
// not fit it is cut at len(buf)-1 and ErrShortBuffer is returned.
func Sprint(buf []byte, tmpl string, args ...Arg) (n int, err error) {
	if len(buf) == 0 {
		return 0, ErrShortBuffer
	}
	p := printer{buf: buf[:0], limit: len(buf) - 1, args: args}
	err = p.render(tmpl)
	n = len(p.buf)
	buf[n] = 0
	if p.short {
		err = ErrShortBuffer
	}
	return n, err
}

// Append renders tmpl to the end of dst.
func Append(dst []byte, tmpl string, args ...Arg) ([]byte, error) {
	p := printer{buf: dst, limit: -1, args: args}
	err := p.render(tmpl)
	return p.buf, err
}

// Fprint renders tmpl and writes the result to w in a single Write.
func Fprint(w io.Writer, tmpl string, args ...Arg) (int, error) {
	var scratch [512]byte
	out, ferr := Append(scratch[:0], tmpl, args...)
	n, err := w.Write(out)
	if err != nil {
		return n, err
	}
	return n, ferr
}

type printer struct {
	buf   []byte
	limit int // -1 for unbounded
	short bool

	args []Arg
	next int
	err  error
}

func (p *printer) put(c byte) {
	if p.limit >= 0 && len(p.buf) >= p.limit {
		p.short = true
		return
	}
	p.buf = append(p.buf, c)
}

func (p *printer) puts(s string) {
	for i := 0; i < len(s); i++ {
		p.put(s[i])
	}
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *printer) render(tmpl string) error {
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch {
		case c == '%' && i+1 < len(tmpl):
			i++
			p.directive(tmpl[i])
		case c == '\\' && i+1 < len(tmpl):
			i++
			p.escape(tmpl[i])
		default:
			p.put(c)
		}
	}
	if p.next < len(p.args) {
		p.fail(ErrExtraArgs)
	}
	return p.err
}

func (p *printer) escape(c byte) {
	switch c {
	case 'n':
		p.put('\n')
	case 'r':
		p.put('\r')
	case 't':
		p.put('\t')
	case '\\':
		p.put('\\')
	default:
		p.put('\\')
		p.put(c)
	}
}

func (p *printer) directive(verb byte) {
	switch verb {
	case 'd', 'x', 's', 'c':
	case '%':
		p.put('%')
		return
	default:
		p.put('%')
		p.put(verb)
		return
	}

	if p.next >= len(p.args) {
		p.fail(ErrMissingArg)
		p.bad(verb, "MISSING")
		return
	}
	a := p.args[p.next]
	p.next++

	switch {
	case verb == 'd' && a.kind != KindText:
		if a.kind == KindChar || a.uns {
			p.putUint(a.word, 10)
		} else {
			p.putInt(int64(a.word), 10)
		}
	case verb == 'x' && a.kind != KindText:
		p.putUint(a.word, 16)
	case verb == 'c' && a.kind != KindText:
		p.put(byte(a.word))
	case verb == 's' && a.kind == KindText:
		p.puts(a.text)
	default:
		p.fail(ErrArgType)
		p.bad(verb, a.kind.String())
	}
}

// bad writes a marker like %!d(MISSING) in place of a directive.
func (p *printer) bad(verb byte, what string) {
	p.puts("%!")
	p.put(verb)
	p.put('(')
	p.puts(what)
	p.put(')')
}

func (p *printer) putInt(v int64, base uint64) {
	u := uint64(v)
	if v < 0 {
		p.put('-')
		u = -u
	}
	p.putUint(u, base)
}

func (p *printer) putUint(v, base uint64) {
	var tmp [64]byte
	for _, c := range tmp[formatBits(tmp[:], v, base):] {
		p.put(c)
	}
}

// formatBits writes v right aligned into tmp and returns the index of the
// first digit. Zero renders as a single "0".
func formatBits[T constraints.Unsigned](tmp []byte, v, base T) int {
	i := len(tmp)
	for {
		i--
		tmp[i] = digits[v%base]
		v /= base
		if v == 0 {
			return i
		}
	}
}
