// Package numeric locates and parses numbers embedded in free text.
//
// The package supports:
//   - Scanning text for numeric tokens with byte offsets, lazily
//   - Locale-aware decimal and grouping separators (12.5 vs 2.500)
//   - Parsing tokens into any integer or float type via generics
//   - Strict whole-string numeric validation and normalization
//   - Character-class checks (digits, letters, radix digits)
//
// # Token grammar
//
// A token is an optional sign immediately preceding an unbroken digit run,
// optionally followed by exactly one decimal separator and a further digit
// run. The sign is part of the token only when it directly touches the
// first digit: "Price -5" yields -5 while "value - 5" yields 5. Grouping
// separators inside a digit run continue the run but are stripped, so
// "2.500 grammi" scanned with LocaleEuropean yields 2500. A second decimal
// separator ends the token, as does any other non-digit character.
//
// # Absence semantics
//
// There is no error path. Empty input, the lack of any digit run, and a
// token that fails to parse as the requested type (overflow, fraction into
// an integer type) all collapse to the zero value plus a false flag, or to
// an empty slice.
//
// # Usage
//
//	price, ok := numeric.FirstNumber[float64]("Price £12.50 each", numeric.LocaleStandard)
//
//	for m := range numeric.Scan("-78.29826, 34.15 160.9", numeric.LocaleStandard) {
//	    fmt.Println(m.Text, m.Start, m.End)
//	}
package numeric
