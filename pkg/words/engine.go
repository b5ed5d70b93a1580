package words

import (
	"github.com/dlclark/regexp2"
)

// compile builds a regexp2 expression with an optional case-insensitivity
// option. regexp2 is used because boundary assertions rely on look-behind,
// which the standard library's RE2 dialect does not support.
func compile(expr string, caseInsensitive bool) (*regexp2.Regexp, error) {
	opts := regexp2.None
	if caseInsensitive {
		opts |= regexp2.IgnoreCase
	}
	return regexp2.Compile(expr, opts)
}

// findAllMatches walks all non-overlapping matches of re in s.
func findAllMatches(re *regexp2.Regexp, s string) []*regexp2.Match {
	var matches []*regexp2.Match
	m, _ := re.FindStringMatch(s)
	for m != nil {
		matches = append(matches, m)
		m, _ = re.FindNextMatch(m)
	}
	return matches
}
