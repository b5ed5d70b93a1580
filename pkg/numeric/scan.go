package numeric

import (
	"iter"
	"strings"
)

// NumberMatch is one numeric token found in a source text. Text holds the
// normalized form ('.' decimal separator, grouping stripped, sign kept)
// while Start and End are the byte offsets of the raw substring it was
// scanned from.
type NumberMatch struct {
	Text  string
	Start int
	End   int
}

// Scan returns a lazy left-to-right sequence of all numeric tokens in s.
// The sequence is finite and restartable: ranging over it again rescans
// from the start. Each token is scanned from the position immediately
// after the previous token's end.
func Scan(s string, locale Locale) iter.Seq[NumberMatch] {
	return func(yield func(NumberMatch) bool) {
		decimal, grouping := locale.separators()
		for i := 0; i < len(s); {
			m, next, ok := nextToken(s, i, decimal, grouping)
			if !ok {
				return
			}
			if !yield(m) {
				return
			}
			i = next
		}
	}
}

// FirstMatch returns the first numeric token in s.
func FirstMatch(s string, locale Locale) (NumberMatch, bool) {
	for m := range Scan(s, locale) {
		return m, true
	}
	return NumberMatch{}, false
}

// nextToken scans for the next token at or after from. It returns the
// token, the position scanning should resume at, and whether a token was
// found.
func nextToken(s string, from int, decimal, grouping byte) (NumberMatch, int, bool) {
	n := len(s)
	i := from
	for i < n && !isASCIIDigit(s[i]) {
		i++
	}
	if i >= n {
		return NumberMatch{}, n, false
	}

	start := i
	var normalized strings.Builder
	// A sign belongs to the token only when it directly touches the first
	// digit; "value - 5" therefore parses as positive 5.
	if i > 0 && (s[i-1] == '-' || s[i-1] == '+') {
		start = i - 1
		if s[i-1] == '-' {
			normalized.WriteByte('-')
		}
	}

	sawDecimal := false
	end := i
scan:
	for i < n {
		switch c := s[i]; {
		case isASCIIDigit(c):
			normalized.WriteByte(c)
			i++
			end = i
		case c == decimal && !sawDecimal && i+1 < n && isASCIIDigit(s[i+1]):
			sawDecimal = true
			normalized.WriteByte('.')
			i++
		case c == grouping && !sawDecimal && i+1 < n && isASCIIDigit(s[i+1]):
			// grouping separators continue the run but are stripped
			i++
		default:
			// includes a second decimal separator, which ends the token
			break scan
		}
	}
	return NumberMatch{Text: normalized.String(), Start: start, End: end}, i, true
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
