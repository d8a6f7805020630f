package keyboard

var (
	makeUnshifted [128]byte
	makeShifted   [128]byte
)

func init() {
	// Walk backwards so that for characters reachable from two keys (the
	// main row and the keypad) the lower scancode wins.
	for code := len(unshifted) - 1; code > 0; code-- {
		if c := unshifted[code]; c != 0 {
			makeUnshifted[c] = byte(code)
		}
	}
	for code := len(shifted) - 1; code > 0; code-- {
		if c := shifted[code]; c != 0 && makeUnshifted[c] == 0 {
			makeShifted[c] = byte(code)
		}
	}
}

// Encode appends to dst the scancodes a US keyboard sends when c is
// typed. Interrupt and EndOfInput become their Ctrl chords, letters and
// symbols from the shifted table are wrapped in Left Shift. Bytes no key
// produces are skipped.
func Encode(dst []byte, c byte) []byte {
	switch c {
	case Interrupt:
		return chord(dst, ScanLeftCtrl, ScanScrollLock)
	case EndOfInput:
		return chord(dst, ScanLeftCtrl, ScanDelete)
	case '\n':
		c = '\r'
	case 127:
		c = 8
	}
	if c >= 128 {
		return dst
	}
	if code := makeUnshifted[c]; code != 0 {
		return append(dst, code, code|Release)
	}
	if code := makeShifted[c]; code != 0 {
		return chord(dst, ScanLeftShift, code)
	}
	return dst
}

// EncodeString encodes every byte of s.
func EncodeString(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		dst = Encode(dst, s[i])
	}
	return dst
}

func chord(dst []byte, mod, code byte) []byte {
	return append(dst, mod, code, code|Release, mod|Release)
}
