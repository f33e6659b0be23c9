package utils

// IsSpace reports whether b is a white-space byte in the C locale:
// space, \t, \n, \v, \f or \r.
func IsSpace(b byte) bool {
	return b == ' ' || (b >= '\t' && b <= '\r')
}

// IsPunct reports whether b is a printable ASCII byte that is neither a
// letter, a digit nor a space.
func IsPunct(b byte) bool {
	return (b >= '!' && b <= '/') ||
		(b >= ':' && b <= '@') ||
		(b >= '[' && b <= '`') ||
		(b >= '{' && b <= '~')
}

// IsLower checks for an ASCII lowercase letter.
func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// ToUpper maps ASCII lowercase letters to uppercase, leaving other bytes
// untouched.
func ToUpper(b byte) byte {
	if IsLower(b) {
		return b - 'a' + 'A'
	}
	return b
}

// IsSeparator checks if b ends a word. Punctuation counts only when
// punctAsSpace is set.
func IsSeparator(b byte, punctAsSpace bool) bool {
	return IsSpace(b) || (punctAsSpace && IsPunct(b))
}
