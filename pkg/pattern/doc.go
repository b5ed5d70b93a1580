// Package pattern provides thin, ergonomic wrappers around Go's regexp
// engine for common match, replace, split and capture operations.
//
// The package supports:
//   - Case-insensitivity as a boolean flag instead of inline (?i) markers
//   - Matching and replacing over single strings and string slices
//   - Multi-pattern all/any matching with per-pattern conditions
//   - Ordered pair and set replacements that tolerate bad patterns
//   - Capture helpers returning byte offsets alongside matched text
//
// # Compilation
//
// All operations funnel through Compile, which prefixes a (?i) marker when
// the case-insensitive flag is set, unless the caller's pattern already
// opens with an inline group such as (?i) or (?:. Patterns are otherwise
// passed to regexp.Compile untouched; syntax errors surface as that
// function's errors.
//
// # Error handling
//
// Operations come in two flavours. The error-returning form reports regex
// compile failures to the caller. The lenient form (Matches, ReplacePairs,
// ReplaceSets, ...) treats a failed compile as a non-match or a no-op
// replacement, which suits pipelines that treat patterns as data.
//
// # Usage
//
//	ok, err := pattern.MatchString("All living beings carry genes", `\bgenes?\b`, true)
//
//	out, err := pattern.Replace("It measured 10cm long", `(\d+)\s*(cm)\b`, "$1 centimetres", true)
//
// Word-boundary aware variants live in the words package; numeric extraction
// lives in the numeric package.
package pattern
