package pattern

// Filter returns the elements of values that match the pattern, in their
// original order. The pattern is compiled once for the whole slice.
func Filter(values []string, expr string, caseInsensitive bool) ([]string, error) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return nil, err
	}
	filtered := make([]string, 0, len(values))
	for _, v := range values {
		if re.MatchString(v) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// Filtered is the lenient form of Filter: an invalid pattern filters
// nothing and the input slice is returned unchanged.
func Filtered(values []string, expr string, caseInsensitive bool) []string {
	filtered, err := Filter(values, expr, caseInsensitive)
	if err != nil {
		return values
	}
	return filtered
}
