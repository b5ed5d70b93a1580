package pattern

// Condition describes one pattern in a multi-pattern test. Positive is
// false for patterns that must not match.
type Condition struct {
	Positive        bool
	Pattern         string
	CaseInsensitive bool
}

// MatchAll reports whether s matches every pattern in the list.
func MatchAll(s string, exprs []string, caseInsensitive bool) bool {
	for _, expr := range exprs {
		if !Matches(s, expr, caseInsensitive) {
			return false
		}
	}
	return true
}

// MatchAny reports whether s matches at least one pattern in the list.
func MatchAny(s string, exprs []string, caseInsensitive bool) bool {
	for _, expr := range exprs {
		if Matches(s, expr, caseInsensitive) {
			return true
		}
	}
	return false
}

// MatchAllConditions reports whether every condition holds: positive
// conditions must match and negative ones must not.
func MatchAllConditions(s string, conditions []Condition) bool {
	for _, c := range conditions {
		if Matches(s, c.Pattern, c.CaseInsensitive) != c.Positive {
			return false
		}
	}
	return true
}

// MatchAnyConditions reports whether at least one condition holds.
func MatchAnyConditions(s string, conditions []Condition) bool {
	for _, c := range conditions {
		if Matches(s, c.Pattern, c.CaseInsensitive) == c.Positive {
			return true
		}
	}
	return false
}

// MatchEachCondition returns the outcome of each condition in order,
// preserving the input length even when some patterns fail to compile.
func MatchEachCondition(s string, conditions []Condition) []bool {
	results := make([]bool, len(conditions))
	for i, c := range conditions {
		results[i] = Matches(s, c.Pattern, c.CaseInsensitive) == c.Positive
	}
	return results
}
