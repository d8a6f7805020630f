package keyboard

// Scancode set 1 make codes with a special meaning to the decoder.
const (
	ScanLeftShift  = 0x2a
	ScanRightShift = 0x36
	ScanLeftCtrl   = 0x1d
	ScanLeftAlt    = 0x38
	ScanScrollLock = 0x46 // with Ctrl: interrupt
	ScanDelete     = 0x53 // with Ctrl: end of input

	// Release is set in the scancode of a key going up.
	Release = 0x80
)

// Bytes synthesized from Ctrl chords.
const (
	Interrupt  = 3 // ^C
	EndOfInput = 4 // ^D
)

// US layout. Zero entries produce nothing.
var unshifted = [128]byte{
	0, 27, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=', 8, 9,
	'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']', 13, 0, 'a', 's',
	'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'', '`', 0, '\\', 'z', 'x', 'c', 'v',
	'b', 'n', 'm', ',', '.', '/', 0, '*', 0, ' ', 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, '-', 0, 0, 0, '+', 0,
}

var shifted = [128]byte{
	0, 27, '!', '@', '#', '$', '%', '^', '&', '*', '(', ')', '_', '+', 8, 9,
	'Q', 'W', 'E', 'R', 'T', 'Y', 'U', 'I', 'O', 'P', '{', '}', 13, 0, 'A', 'S',
	'D', 'F', 'G', 'H', 'J', 'K', 'L', ':', '"', '~', 0, '|', 'Z', 'X', 'C', 'V',
	'B', 'N', 'M', '<', '>', '?', 0, '*', 0, ' ', 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, '-', 0, 0, 0, '+', 0,
}
