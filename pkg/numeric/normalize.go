package numeric

import (
	"strings"

	"github.com/fyrsmithlabs/stringpatterns/pkg/segments"
)

// IsNumeric is a strict whole-string check that s would survive a plain
// numeric parse: an optional leading minus, decimal digits, and at most one
// non-final '.'. Use NormalizeDecimal or Scan first for looser inputs with
// grouping separators or surrounding text.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	dots := 0
	hasDigit := false
	last := len(s) - 1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isASCIIDigit(c):
			hasDigit = true
		case c == '-':
			if i != 0 {
				return false
			}
		case c == '.':
			dots++
			if i == last || dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return hasDigit
}

// NormalizeDecimal rewrites a numeric string with ambiguous ',' and '.'
// usage to plain '.'-decimal form. Multiple dots mark dots as grouping; a
// comma after the last dot marks the comma as decimal; LocaleEuropean
// forces comma-decimal whenever at most one comma is present. It is meant
// for strings that are already numeric: grouping characters are stripped
// outright.
func NormalizeDecimal(s string, locale Locale) string {
	lastComma := strings.LastIndex(s, ",")
	if lastComma < 0 {
		lastComma = 0
	}
	lastDot := strings.LastIndex(s, ".")
	if lastDot < 0 {
		lastDot = 0
	}
	commas := strings.Count(s, ",")
	commaIsDecimal := strings.Count(s, ".") > 1 ||
		(lastComma > lastDot && commas <= 1) ||
		(locale == LocaleEuropean && commas <= 1)
	if commaIsDecimal {
		if commas < 1 {
			return strings.ReplaceAll(s, ".", "")
		}
		whole, fraction := segments.StartEnd(s, ",")
		return strings.ReplaceAll(whole, ".", "") + "." + fraction
	}
	return strings.ReplaceAll(s, ",", "")
}

// NumericStrings returns the normalized text of every token in s, left to
// right.
func NumericStrings(s string, locale Locale) []string {
	var out []string
	for m := range Scan(s, locale) {
		out = append(out, m.Text)
	}
	return out
}

// StripNonDigits removes every character that is not a decimal digit.
// Digits separated by other text end up adjacent; use StripNonNumeric to
// keep distinct numbers apart.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isASCIIDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// StripNonNumeric reduces s to its numeric tokens joined by single spaces.
func StripNonNumeric(s string) string {
	return strings.Join(NumericStrings(s, LocaleStandard), " ")
}
