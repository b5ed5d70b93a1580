package numeric

import (
	"unicode"
)

// HasDigits reports whether s contains any decimal digit.
func HasDigits(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// HasDigitsRadix reports whether s contains any digit of the given radix,
// e.g. radix 16 accepts 0-9 and a-f in either case.
func HasDigitsRadix(s string, radix int) bool {
	for _, r := range s {
		if isDigitRadix(r, radix) {
			return true
		}
	}
	return false
}

// IsDigitsOnly reports whether s consists entirely of decimal digits.
// An empty string qualifies.
func IsDigitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsDigitsOnlyRadix reports whether s consists entirely of digits of the
// given radix.
func IsDigitsOnlyRadix(s string, radix int) bool {
	for _, r := range s {
		if !isDigitRadix(r, radix) {
			return false
		}
	}
	return true
}

// HasAlphanumeric reports whether s contains any letter or digit,
// including those from non-Latin alphabets.
func HasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// HasAlphabetic reports whether s contains any letter, excluding digits.
func HasAlphabetic(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isDigitRadix mirrors the usual radix digit rules for radixes 2 to 36.
func isDigitRadix(r rune, radix int) bool {
	var value int
	switch {
	case r >= '0' && r <= '9':
		value = int(r - '0')
	case r >= 'a' && r <= 'z':
		value = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		value = int(r-'A') + 10
	default:
		return false
	}
	return value < radix
}
