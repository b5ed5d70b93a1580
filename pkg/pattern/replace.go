package pattern

// Pair couples a pattern with its replacement for ordered multi-pattern
// replacement.
type Pair struct {
	Pattern     string
	Replacement string
}

// Swap extends Pair with a per-entry case-sensitivity flag.
type Swap struct {
	Pattern         string
	Replacement     string
	CaseInsensitive bool
}

// Replace substitutes all matches of the pattern in s with the replacement.
// Capture references such as $1 follow regexp.Regexp.ReplaceAllString rules.
func Replace(s, expr, replacement string, caseInsensitive bool) (string, error) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return s, err
	}
	return re.ReplaceAllString(s, replacement), nil
}

// ReplaceFirst substitutes only the leftmost match of the pattern in s.
func ReplaceFirst(s, expr, replacement string, caseInsensitive bool) (string, error) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return s, err
	}
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, nil
	}
	replaced := re.ReplaceAllString(s[loc[0]:loc[1]], replacement)
	return s[:loc[0]] + replaced + s[loc[1]:], nil
}

// ReplaceIn applies the same pattern replacement to every element of values.
// The pattern is compiled once; on failure the input slice is returned
// unchanged alongside the error.
func ReplaceIn(values []string, expr, replacement string, caseInsensitive bool) ([]string, error) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return values, err
	}
	replaced := make([]string, len(values))
	for i, v := range values {
		replaced[i] = re.ReplaceAllString(v, replacement)
	}
	return replaced, nil
}

// ReplacePairs applies each pattern/replacement pair in order. Pairs whose
// pattern fails to compile are skipped; earlier replacements are kept.
func ReplacePairs(s string, pairs []Pair, caseInsensitive bool) string {
	out := s
	for _, p := range pairs {
		if replaced, err := Replace(out, p.Pattern, p.Replacement, caseInsensitive); err == nil {
			out = replaced
		}
	}
	return out
}

// ReplacePairsIn applies ReplacePairs to every element of values.
func ReplacePairsIn(values []string, pairs []Pair, caseInsensitive bool) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = ReplacePairs(v, pairs, caseInsensitive)
	}
	return out
}

// ReplaceSets applies each swap in order with its own case-sensitivity
// flag. Swaps whose pattern fails to compile are skipped.
func ReplaceSets(s string, sets []Swap) string {
	out := s
	for _, set := range sets {
		if replaced, err := Replace(out, set.Pattern, set.Replacement, set.CaseInsensitive); err == nil {
			out = replaced
		}
	}
	return out
}
