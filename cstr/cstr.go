// Package cstr operates on NUL-terminated byte strings stored in fixed
// buffers, the representation the line editor and shell share. A buffer
// without a NUL is treated as terminated at its end.
package cstr

// Len returns the number of bytes before the first NUL.
func Len(s []byte) int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return len(s)
}

// String copies the terminated prefix of s into a Go string.
func String(s []byte) string {
	return string(s[:Len(s)])
}

// Compare compares a and b bytewise as unsigned chars and returns the
// difference of the first mismatching pair, or 0 if they are equal.
func Compare(a, b []byte) int {
	i := 0
	for ; at(a, i) != 0 && at(a, i) == at(b, i); i++ {
	}
	return int(at(a, i)) - int(at(b, i))
}

// NCompare is Compare limited to the first n bytes.
func NCompare(a, b []byte, n int) int {
	i := 0
	for ; n > 0 && at(a, i) != 0 && at(a, i) == at(b, i); i++ {
		n--
	}
	if n == 0 {
		return 0
	}
	return int(at(a, i)) - int(at(b, i))
}

// Equal reports whether the terminated string s equals lit.
func Equal(s []byte, lit string) bool {
	n := Len(s)
	return n == len(lit) && string(s[:n]) == lit
}

// Copy copies the terminated string src into dst including the terminator.
// It returns the number of bytes copied excluding the terminator. dst must
// hold Len(src)+1 bytes; anything beyond its end is cut off.
func Copy(dst, src []byte) int {
	n := copy(dst, src[:Len(src)])
	if n < len(dst) {
		dst[n] = 0
	}
	return n
}

// NCopy copies at most n bytes of src into dst. As with strncpy, dst is
// only terminated if src ended before n bytes.
func NCopy(dst, src []byte, n int) int {
	i := 0
	for ; n > 0 && at(src, i) != 0 && i < len(dst); i++ {
		dst[i] = src[i]
		n--
	}
	if n > 0 && i < len(dst) {
		dst[i] = 0
	}
	return i
}

func at(s []byte, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}
