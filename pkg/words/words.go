package words

import (
	"strings"
)

// MatchBounds reports whether s contains the fragment with the given
// boundary requirement. An invalid fragment counts as a non-match.
func MatchBounds(s, fragment string, bounds Bounds, caseInsensitive bool) bool {
	re, err := compile(bounds.Pattern(fragment), caseInsensitive)
	if err != nil {
		return false
	}
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// MatchWord reports whether s contains the fragment as a whole word. For
// words with optional hyphens use -?, e.g. hip-?hop matches hip-hop and
// hiphop but not hip-hopping.
func MatchWord(s, word string, caseInsensitive bool) bool {
	return MatchBounds(s, word, BoundBoth, caseInsensitive)
}

// MatchWordStart reports whether s contains the fragment at the start of a
// word.
func MatchWordStart(s, word string, caseInsensitive bool) bool {
	return MatchBounds(s, word, BoundStart, caseInsensitive)
}

// MatchWordEnd reports whether s contains the fragment at the end of a
// word.
func MatchWordEnd(s, word string, caseInsensitive bool) bool {
	return MatchBounds(s, word, BoundEnd, caseInsensitive)
}

// anyPattern joins fragments into one whole-word alternation.
func anyPattern(fragments []string) string {
	return strings.Join(fragments, "|")
}

// MatchAnyWords reports whether s contains at least one of the fragments
// as a whole word, using a single alternation pattern.
func MatchAnyWords(s string, fragments []string, caseInsensitive bool) bool {
	if len(fragments) == 0 {
		return false
	}
	return MatchWord(s, anyPattern(fragments), caseInsensitive)
}

// MatchAllWords reports whether s contains every fragment as a whole word.
func MatchAllWords(s string, fragments []string, caseInsensitive bool) bool {
	return CountMatchedWords(s, fragments, BoundBoth, caseInsensitive) == len(fragments)
}

// CountMatchedWords returns how many of the fragments match s with the
// given bounds.
func CountMatchedWords(s string, fragments []string, bounds Bounds, caseInsensitive bool) int {
	matched := 0
	for _, fragment := range fragments {
		if MatchBounds(s, fragment, bounds, caseInsensitive) {
			matched++
		}
	}
	return matched
}

// MatchEachWord returns one whole-word outcome per fragment, in order.
func MatchEachWord(s string, fragments []string, caseInsensitive bool) []bool {
	results := make([]bool, len(fragments))
	for i, fragment := range fragments {
		results[i] = MatchWord(s, fragment, caseInsensitive)
	}
	return results
}

// CountBounds returns the number of occurrences of the fragment in s with
// the given boundary requirement.
func CountBounds(s, fragment string, bounds Bounds, caseInsensitive bool) int {
	re, err := compile(bounds.Pattern(fragment), caseInsensitive)
	if err != nil {
		return 0
	}
	return len(findAllMatches(re, s))
}

// CountWord returns the number of whole-word occurrences of the fragment
// in s.
func CountWord(s, word string, caseInsensitive bool) int {
	return CountBounds(s, word, BoundBoth, caseInsensitive)
}

// FilterWords returns the elements of values containing the fragment as a
// whole word, in their original order.
func FilterWords(values []string, word string, caseInsensitive bool) []string {
	re, err := compile(BoundBoth.Pattern(word), caseInsensitive)
	if err != nil {
		return nil
	}
	filtered := make([]string, 0, len(values))
	for _, v := range values {
		if ok, err := re.MatchString(v); err == nil && ok {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// WordsByProximity reports whether whole-word matches of first and second
// occur within min..max characters of each other, measured from the end of
// the first match to the start of the second. A negative min allows the
// second word to occur before the first; in that case the reversed distance
// is also considered.
func WordsByProximity(s, first, second string, min, max int, caseInsensitive bool) bool {
	re1, err := compile(BoundBoth.Pattern(first), caseInsensitive)
	if err != nil {
		return false
	}
	re2, err := compile(BoundBoth.Pattern(second), caseInsensitive)
	if err != nil {
		return false
	}
	matches1 := findAllMatches(re1, s)
	matches2 := findAllMatches(re2, s)
	if len(matches1) == 0 || len(matches2) == 0 {
		return false
	}
	firstFirst := matches1[0]
	lastSecond := matches2[len(matches2)-1]
	diff := lastSecond.Index - (firstFirst.Index + firstFirst.Length)
	if diff >= min && diff <= max {
		return true
	}
	if min < 0 {
		lastFirst := matches1[len(matches1)-1]
		firstSecond := matches2[0]
		reversed := lastFirst.Index - (firstSecond.Index + firstSecond.Length)
		return reversed >= min && reversed <= max
	}
	return false
}
