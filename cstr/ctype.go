package cstr

func IsDigit(c byte) bool { return c >= '0' && c <= '9' }
func IsUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func IsLower(c byte) bool { return c >= 'a' && c <= 'z' }
func IsAlpha(c byte) bool { return IsUpper(c) || IsLower(c) }
func IsAlnum(c byte) bool { return IsAlpha(c) || IsDigit(c) }

// IsSpace matches space, tab, CR and LF only.
func IsSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

// IsBlank matches the separators the shell splits arguments on.
func IsBlank(c byte) bool { return c == ' ' || c == '\t' }

// IsPrint matches the bytes the line editor accepts into a line.
func IsPrint(c byte) bool { return c >= 32 && c < 127 }

func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - 32
	}
	return c
}

func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + 32
	}
	return c
}
