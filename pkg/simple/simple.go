package simple

import (
	"strings"
	"unicode"
)

// StartsWithCI reports whether s starts with prefix, ignoring case.
func StartsWithCI(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// EndsWithCI reports whether s ends with suffix, ignoring case.
func EndsWithCI(s, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))
}

// ContainsCI reports whether s contains substr, ignoring case.
func ContainsCI(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// StartsWithCIAlphanum is StartsWithCI after stripping every character
// that is not a letter or digit from s.
func StartsWithCIAlphanum(s, prefix string) bool {
	return strings.HasPrefix(StripNonAlphanum(strings.ToLower(s)), strings.ToLower(prefix))
}

// EndsWithCIAlphanum is EndsWithCI after stripping every character that is
// not a letter or digit from s.
func EndsWithCIAlphanum(s, suffix string) bool {
	return strings.HasSuffix(StripNonAlphanum(strings.ToLower(s)), strings.ToLower(suffix))
}

// ContainsCIAlphanum is ContainsCI after stripping every character that is
// not a letter or digit from s.
func ContainsCIAlphanum(s, substr string) bool {
	return strings.Contains(StripNonAlphanum(strings.ToLower(s)), strings.ToLower(substr))
}

// StripNonAlphanum removes every character that is not a letter or digit,
// including the spaces separating words. Letters from non-Latin alphabets
// are kept.
func StripNonAlphanum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchedIndices returns the byte offsets of every non-overlapping
// occurrence of the literal substr in s.
func MatchedIndices(s, substr string) []int {
	if substr == "" {
		return nil
	}
	var indices []int
	offset := 0
	for {
		idx := strings.Index(s[offset:], substr)
		if idx < 0 {
			return indices
		}
		indices = append(indices, offset+idx)
		offset += idx + len(substr)
	}
}
