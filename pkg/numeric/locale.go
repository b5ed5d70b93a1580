package numeric

// Locale selects which punctuation character serves as the decimal
// separator and which as the ignorable grouping separator while scanning.
type Locale int

const (
	// LocaleStandard treats '.' as decimal separator and ',' as grouping.
	LocaleStandard Locale = iota
	// LocaleEuropean treats ',' as decimal separator and '.' as grouping.
	LocaleEuropean
)

// separators returns the decimal and grouping separator bytes for the
// locale.
func (l Locale) separators() (decimal, grouping byte) {
	if l == LocaleEuropean {
		return ',', '.'
	}
	return '.', ','
}

// String returns the configuration name of the locale.
func (l Locale) String() string {
	if l == LocaleEuropean {
		return "european"
	}
	return "standard"
}

// ParseLocale maps a configuration string onto a Locale. Unknown names
// fall back to LocaleStandard.
func ParseLocale(name string) Locale {
	if name == "european" || name == "euro" {
		return LocaleEuropean
	}
	return LocaleStandard
}
