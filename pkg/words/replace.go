package words

import (
	"github.com/fyrsmithlabs/stringpatterns/pkg/pattern"
)

// ReplaceBounds replaces matches of the fragment with the given boundary
// requirement. On an invalid fragment the input is returned unchanged.
func ReplaceBounds(s, fragment, replacement string, bounds Bounds, caseInsensitive bool) string {
	re, err := compile(bounds.Pattern(fragment), caseInsensitive)
	if err != nil {
		return s
	}
	out, err := re.Replace(s, replacement, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// ReplaceWord replaces whole-word occurrences of word in s.
func ReplaceWord(s, word, replacement string, caseInsensitive bool) string {
	return ReplaceBounds(s, word, replacement, BoundBoth, caseInsensitive)
}

// ReplaceWords applies whole-word replacement for each pair in order.
func ReplaceWords(s string, pairs []pattern.Pair, caseInsensitive bool) string {
	out := s
	for _, p := range pairs {
		out = ReplaceWord(out, p.Pattern, p.Replacement, caseInsensitive)
	}
	return out
}

// ReplaceWordSets applies whole-word replacement for each swap in order,
// honouring the per-entry case-sensitivity flag.
func ReplaceWordSets(s string, sets []pattern.Swap) string {
	out := s
	for _, set := range sets {
		out = ReplaceWord(out, set.Pattern, set.Replacement, set.CaseInsensitive)
	}
	return out
}
