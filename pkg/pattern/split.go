package pattern

// Split divides s around all matches of the pattern, returning the parts
// between matches.
func Split(s, expr string, caseInsensitive bool) ([]string, error) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return nil, err
	}
	return re.Split(s, -1), nil
}

// SplitParts is the lenient form of Split: an invalid pattern yields an
// empty slice.
func SplitParts(s, expr string, caseInsensitive bool) []string {
	parts, err := Split(s, expr, caseInsensitive)
	if err != nil {
		return nil
	}
	return parts
}

// SplitPair divides s around the first match of the pattern only. When the
// pattern does not match, head is the whole string and tail is empty.
func SplitPair(s, expr string, caseInsensitive bool) (head, tail string, err error) {
	re, err := Compile(expr, caseInsensitive)
	if err != nil {
		return "", "", err
	}
	parts := re.Split(s, 2)
	head = parts[0]
	if len(parts) > 1 {
		tail = parts[1]
	}
	return head, tail, nil
}
