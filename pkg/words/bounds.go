package words

// Bounds selects which edges of a pattern fragment must align with word
// edges.
type Bounds int

const (
	// BoundNone leaves the fragment unchanged.
	BoundNone Bounds = iota
	// BoundStart anchors the fragment's left edge to the start of a word.
	BoundStart
	// BoundEnd anchors the fragment's right edge to the end of a word.
	BoundEnd
	// BoundBoth anchors both edges.
	BoundBoth
)

// Word-edge assertions. A position qualifies as a word start when it is not
// preceded by a word character, which covers the start of text without a
// separate anchor; symmetrically for word ends.
const (
	startAssertion = `(?<!\w)`
	endAssertion   = `(?!\w)`
)

// Pattern composes the boundary assertions onto fragment. With BoundNone
// the fragment is returned verbatim; otherwise it is wrapped in a
// non-capturing group so alternations and multi-word phrases bind as a
// whole. The fragment is never escaped: callers may embed their own regex
// syntax.
func (b Bounds) Pattern(fragment string) string {
	switch b {
	case BoundStart:
		return startAssertion + "(?:" + fragment + ")"
	case BoundEnd:
		return "(?:" + fragment + ")" + endAssertion
	case BoundBoth:
		return startAssertion + "(?:" + fragment + ")" + endAssertion
	default:
		return fragment
	}
}

// String returns the configuration name of the bounds value.
func (b Bounds) String() string {
	switch b {
	case BoundStart:
		return "start"
	case BoundEnd:
		return "end"
	case BoundBoth:
		return "both"
	default:
		return "none"
	}
}

// ParseBounds maps a configuration string onto a Bounds value. Unknown
// names fall back to BoundBoth, the common whole-word case.
func ParseBounds(name string) Bounds {
	switch name {
	case "none":
		return BoundNone
	case "start":
		return BoundStart
	case "end":
		return BoundEnd
	default:
		return BoundBoth
	}
}
