// Package simple provides regex-free matchers for the common cases where a
// full pattern is overkill: case-insensitive prefix, suffix and containment
// checks, optionally ignoring all non-alphanumeric characters, plus the
// literal-substring index helper MatchedIndices.
//
// The alphanumeric variants strip punctuation, symbols and spaces from both
// operands before comparing, so "São Paulo!" contains "sao" is false but
// contains "paulo" is true:
//
//	simple.ContainsCIAlphanum("New York City", "yorkcity") // true
package simple
