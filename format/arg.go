package format

import (
	"golang.org/x/exp/constraints"

	"github.com/SeraphinaAstra/VibeOS/cstr"
)

// Kind tags the value an Arg carries.
type Kind uint8

const (
	KindInt Kind = iota
	KindText
	KindChar
)

var kindNames = [...]string{
	KindInt:  "int",
	KindText: "text",
	KindChar: "char",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Arg is one positional argument. The zero value is Int(0).
type Arg struct {
	kind Kind
	word uint64
	text string
	none bool
	uns  bool // word is unsigned for %d
}

// Int wraps an integer of any width. Signed values are sign extended to a
// 64-bit word, so %x renders them as their two's complement. Unsigned
// values keep their full range under %d.
func Int[T constraints.Integer](v T) Arg {
	var zero T
	return Arg{kind: KindInt, word: uint64(v), uns: ^zero > zero}
}

// Uint wraps an unsigned integer of any width.
func Uint[T constraints.Unsigned](v T) Arg {
	return Arg{kind: KindInt, word: uint64(v), uns: true}
}

// Char wraps a single byte.
func Char(c byte) Arg {
	return Arg{kind: KindChar, word: uint64(c)}
}

// Str wraps a Go string.
func Str(s string) Arg {
	return Arg{kind: KindText, text: s}
}

// CStr wraps a NUL-terminated buffer. A nil buffer is the "none" string and
// renders as nothing.
func CStr(b []byte) Arg {
	if b == nil {
		return Arg{kind: KindText, none: true}
	}
	return Arg{kind: KindText, text: cstr.String(b)}
}

func (a Arg) Kind() Kind { return a.kind }

// IsNone reports whether a is the text argument of a nil buffer.
func (a Arg) IsNone() bool { return a.none }
