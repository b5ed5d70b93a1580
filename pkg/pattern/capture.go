package pattern

// Match records one matched region with its byte offsets in the source.
type Match struct {
	Start int
	End   int
	Text  string
}

// FirstMatch returns the leftmost match of the pattern in s.
func FirstMatch(s, expr string, caseInsensitive bool) (Match, bool) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return Match{}, false
	}
	loc := re.FindStringIndex(s)
	if loc == nil {
		return Match{}, false
	}
	return Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]]}, true
}

// FindAll returns every non-overlapping whole-pattern match in s, left to
// right. Capture groups are not reported separately; see FindAllGroups.
func FindAll(s, expr string, caseInsensitive bool) []Match {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return nil
	}
	locs := re.FindAllStringIndex(s, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]]})
	}
	return matches
}

// FindAllGroups returns whole-pattern matches and their matched subgroups
// as a flat, deduplicated sequence in source order. A group matching the
// same text at the same offsets as an earlier entry appears only once.
func FindAllGroups(s, expr string, caseInsensitive bool) []Match {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return nil
	}
	var matches []Match
	seen := make(map[Match]struct{})
	for _, idx := range re.FindAllStringSubmatchIndex(s, -1) {
		for g := 0; g*2 < len(idx); g++ {
			start, end := idx[g*2], idx[g*2+1]
			if start < 0 {
				continue
			}
			m := Match{Start: start, End: end, Text: s[start:end]}
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			matches = append(matches, m)
		}
	}
	return matches
}

// FirstInnerMatch returns the first parenthesized capture of the leftmost
// match, falling back to the whole match for patterns without captures.
func FirstInnerMatch(s, expr string, caseInsensitive bool) (Match, bool) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return Match{}, false
	}
	idx := re.FindStringSubmatchIndex(s)
	if idx == nil {
		return Match{}, false
	}
	if re.NumSubexp() > 0 && idx[2] >= 0 {
		return Match{Start: idx[2], End: idx[3], Text: s[idx[2]:idx[3]]}, true
	}
	return Match{Start: idx[0], End: idx[1], Text: s[idx[0]:idx[1]]}, true
}

// LastMatch returns the rightmost whole-pattern match in s.
func LastMatch(s, expr string, caseInsensitive bool) (Match, bool) {
	matches := FindAll(s, expr, caseInsensitive)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[len(matches)-1], true
}

// FirstLastMatches returns the leftmost and rightmost matches. With a
// single match both values are the same region.
func FirstLastMatches(s, expr string, caseInsensitive bool) (first, last Match, ok bool) {
	matches := FindAll(s, expr, caseInsensitive)
	if len(matches) == 0 {
		return Match{}, Match{}, false
	}
	return matches[0], matches[len(matches)-1], true
}

// FirstIndex returns the byte offset at which the first match starts.
func FirstIndex(s, expr string, caseInsensitive bool) (int, bool) {
	m, ok := FirstMatch(s, expr, caseInsensitive)
	if !ok {
		return 0, false
	}
	return m.Start, true
}

// FirstEndIndex returns the byte offset just past the first match.
func FirstEndIndex(s, expr string, caseInsensitive bool) (int, bool) {
	m, ok := FirstMatch(s, expr, caseInsensitive)
	if !ok {
		return 0, false
	}
	return m.End, true
}

// LastStartIndex returns the byte offset at which the last match starts.
func LastStartIndex(s, expr string, caseInsensitive bool) (int, bool) {
	m, ok := LastMatch(s, expr, caseInsensitive)
	if !ok {
		return 0, false
	}
	return m.Start, true
}

// LastIndex returns the byte offset just past the last match.
func LastIndex(s, expr string, caseInsensitive bool) (int, bool) {
	m, ok := LastMatch(s, expr, caseInsensitive)
	if !ok {
		return 0, false
	}
	return m.End, true
}

// Count returns the number of non-overlapping whole-pattern matches in s.
// An invalid pattern counts as zero matches.
func Count(s, expr string, caseInsensitive bool) int {
	return len(FindAll(s, expr, caseInsensitive))
}
