// Package segments extracts parts of a string around a literal separator:
// heads, tails, indexed segments and nested inner segments. It is the
// regex-free companion to the pattern package's Split, useful for paths,
// dates and other separator-structured values.
//
// Parts preserves empty segments produced by leading, trailing or repeated
// separators; Segments drops them. At accepts negative indices counted
// from the end:
//
//	segments.At("10/11/2024", "/", 1)  // "11", true
//	segments.At("10/11/2024", "/", -1) // "2024", true
//
// Inner drills through several separator levels in one call:
//
//	segments.Inner("pictures/holiday-france-1983/originals",
//	    []segments.Level{{Sep: "/", Index: 1}, {Sep: "-", Index: 2}}) // "1983", true
package segments
