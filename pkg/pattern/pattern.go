package pattern

import (
	"regexp"
	"strings"
)

// Compile builds a regular expression with an optional case-insensitive
// marker. The marker is skipped when the pattern already starts with an
// inline group, so explicit flags in the pattern always win.
func Compile(expr string, caseInsensitive bool) (*regexp.Regexp, error) {
	if caseInsensitive && !strings.HasPrefix(expr, "(?") {
		expr = "(?i)" + expr
	}
	return regexp.Compile(expr)
}

// MatchString reports whether s contains a match of the pattern. A compile
// failure is returned as an error.
func MatchString(s, expr string, caseInsensitive bool) (bool, error) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// Matches is the lenient form of MatchString: an invalid pattern counts as
// a non-match.
func Matches(s, expr string, caseInsensitive bool) bool {
	ok, err := MatchString(s, expr, caseInsensitive)
	return err == nil && ok
}

// MatchAnyIn reports whether any element of values matches the pattern.
// The pattern is compiled once for the whole slice.
func MatchAnyIn(values []string, expr string, caseInsensitive bool) (bool, error) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return false, err
	}
	for _, v := range values {
		if re.MatchString(v) {
			return true, nil
		}
	}
	return false, nil
}

// MatchEach returns one boolean per element of values. A compile failure
// is returned as an error with a nil slice.
func MatchEach(values []string, expr string, caseInsensitive bool) ([]bool, error) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return nil, err
	}
	results := make([]bool, len(values))
	for i, v := range values {
		results[i] = re.MatchString(v)
	}
	return results, nil
}

// MatchesEach is the lenient form of MatchEach: an invalid pattern yields
// an all-false slice of the same length as values.
func MatchesEach(values []string, expr string, caseInsensitive bool) []bool {
	results, err := MatchEach(values, expr, caseInsensitive)
	if err != nil {
		return make([]bool, len(values))
	}
	return results
}
