// Package matchset composes a core pattern with look-behind and look-ahead
// conditions into a single compiled expression.
//
// A Set is built fluently and compiled once, with each condition either
// positive (must hold) or negative (must not hold):
//
//	set := matchset.New(`\d+`, false).
//	    LookBehind(`£`, true).
//	    LookAhead(`\s*each`, true)
//	ok, err := set.MatchString("Price £12 each")
//
// The conditions become real zero-width assertions, so match offsets and
// replacements cover only the core pattern. Compilation uses the regexp2
// engine, which supports lookaround; the core pattern may use any syntax
// that engine accepts.
package matchset
