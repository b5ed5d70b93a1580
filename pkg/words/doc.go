// Package words provides whole-word and word-boundary aware matching,
// counting and replacement.
//
// The package supports:
//   - Bounds: composing boundary assertions onto a raw pattern fragment
//   - Whole-word match, count and filter over strings and slices
//   - Word replacement with per-call or per-entry case sensitivity
//   - Proximity checks between two whole-word patterns
//
// # Boundary composition
//
// The engine's native \b assertion anchors on every word-character
// transition, which breaks down for multi-word phrases and for fragments
// whose outer edges are not word characters. Bounds.Pattern instead wraps
// the fragment in a non-capturing group and guards it with the zero-width
// assertions (?<!\w) and (?!\w), so boundary checks apply only to the two
// outer edges of the whole fragment:
//
//	words.BoundBoth.Pattern("cat|dog") // (?<!\w)(?:cat|dog)(?!\w)
//	words.BoundBoth.Pattern("New York") // matches inside "New York City"
//
// Because those assertions require look-behind, patterns produced here are
// matched with the regexp2 engine rather than the standard library's RE2
// dialect. Bounds.Pattern itself never compiles or matches; it is pure
// string composition and callers may feed the result to any engine that
// supports lookaround.
package words
