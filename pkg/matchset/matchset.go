package matchset

import (
	"errors"

	"github.com/dlclark/regexp2"
)

// ErrEmptyPattern is returned when a Set is used without a core pattern.
var ErrEmptyPattern = errors.New("matchset: empty core pattern")

// condition is one lookaround requirement attached to a Set.
type condition struct {
	pattern  string
	positive bool
}

// Set couples a core pattern with optional look-behind and look-ahead
// conditions and a case-sensitivity mode. The zero value is unusable; use
// New.
type Set struct {
	core            string
	caseInsensitive bool
	behind          *condition
	ahead           *condition
}

// New returns a Set around the core pattern.
func New(core string, caseInsensitive bool) *Set {
	return &Set{core: core, caseInsensitive: caseInsensitive}
}

// LookBehind requires the position before each core match to satisfy (or,
// with positive false, violate) the pattern. It returns the Set for
// chaining.
func (s *Set) LookBehind(pattern string, positive bool) *Set {
	s.behind = &condition{pattern: pattern, positive: positive}
	return s
}

// LookAhead requires the position after each core match to satisfy (or,
// with positive false, violate) the pattern.
func (s *Set) LookAhead(pattern string, positive bool) *Set {
	s.ahead = &condition{pattern: pattern, positive: positive}
	return s
}

// CaseInsensitive switches the whole set to case-insensitive matching.
func (s *Set) CaseInsensitive() *Set {
	s.caseInsensitive = true
	return s
}

// CaseSensitive switches the whole set to case-sensitive matching.
func (s *Set) CaseSensitive() *Set {
	s.caseInsensitive = false
	return s
}

// Pattern returns the composed expression with the conditions rendered as
// zero-width assertions around the core.
func (s *Set) Pattern() (string, error) {
	if s.core == "" {
		return "", ErrEmptyPattern
	}
	expr := "(?:" + s.core + ")"
	if s.behind != nil {
		if s.behind.positive {
			expr = "(?<=" + s.behind.pattern + ")" + expr
		} else {
			expr = "(?<!" + s.behind.pattern + ")" + expr
		}
	}
	if s.ahead != nil {
		if s.ahead.positive {
			expr += "(?=" + s.ahead.pattern + ")"
		} else {
			expr += "(?!" + s.ahead.pattern + ")"
		}
	}
	return expr, nil
}

// Compile builds the composed expression.
func (s *Set) Compile() (*regexp2.Regexp, error) {
	expr, err := s.Pattern()
	if err != nil {
		return nil, err
	}
	opts := regexp2.None
	if s.caseInsensitive {
		opts |= regexp2.IgnoreCase
	}
	return regexp2.Compile(expr, opts)
}

// MatchString reports whether sample contains a core match satisfying all
// conditions.
func (s *Set) MatchString(sample string) (bool, error) {
	re, err := s.Compile()
	if err != nil {
		return false, err
	}
	return re.MatchString(sample)
}

// Matches is the lenient form of MatchString: compile failures count as
// non-matches.
func (s *Set) Matches(sample string) bool {
	ok, err := s.MatchString(sample)
	return err == nil && ok
}

// FindAllStrings returns the text of every core match satisfying the
// conditions, left to right.
func (s *Set) FindAllStrings(sample string) []string {
	re, err := s.Compile()
	if err != nil {
		return nil
	}
	var matches []string
	m, _ := re.FindStringMatch(sample)
	for m != nil {
		matches = append(matches, m.String())
		m, _ = re.FindNextMatch(m)
	}
	return matches
}

// Replace substitutes every core match satisfying the conditions. The
// surrounding lookaround context is untouched.
func (s *Set) Replace(sample, replacement string) (string, error) {
	re, err := s.Compile()
	if err != nil {
		return sample, err
	}
	return re.Replace(sample, replacement, -1, -1)
}
