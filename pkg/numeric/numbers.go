package numeric

import (
	"strconv"
)

// Number constrains the target types a token may be parsed into.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// FirstNumber parses the first numeric token in s as T. The zero value and
// false are returned when no token exists or when the first token does not
// parse as T (overflow, or a fractional token into an integer type).
func FirstNumber[T Number](s string, locale Locale) (T, bool) {
	m, ok := FirstMatch(s, locale)
	if !ok {
		var zero T
		return zero, false
	}
	return parseAs[T](m.Text)
}

// Numbers parses all numeric tokens in s as T, left to right. Tokens that
// do not parse as T are skipped.
func Numbers[T Number](s string, locale Locale) []T {
	var out []T
	for m := range Scan(s, locale) {
		if v, ok := parseAs[T](m.Text); ok {
			out = append(out, v)
		}
	}
	return out
}

// FirstFloat is shorthand for FirstNumber[float64] in the standard locale.
func FirstFloat(s string) (float64, bool) {
	return FirstNumber[float64](s, LocaleStandard)
}

// FirstInt is shorthand for FirstNumber[int64] in the standard locale.
func FirstInt(s string) (int64, bool) {
	return FirstNumber[int64](s, LocaleStandard)
}

// Floats is shorthand for Numbers[float64] in the standard locale.
func Floats(s string) []float64 {
	return Numbers[float64](s, LocaleStandard)
}

// Ints is shorthand for Numbers[int64] in the standard locale.
func Ints(s string) []int64 {
	return Numbers[int64](s, LocaleStandard)
}

// parseAs parses a normalized token into the concrete target type, using
// the matching strconv parser so integer overflow and stray fractions are
// rejected rather than truncated.
func parseAs[T Number](text string) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case float32:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return zero, false
		}
		return any(float32(v)).(T), true
	case float64:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return zero, false
		}
		return any(v).(T), true
	case int:
		v, err := strconv.ParseInt(text, 10, strconv.IntSize)
		if err != nil {
			return zero, false
		}
		return any(int(v)).(T), true
	case int8:
		v, err := strconv.ParseInt(text, 10, 8)
		if err != nil {
			return zero, false
		}
		return any(int8(v)).(T), true
	case int16:
		v, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return zero, false
		}
		return any(int16(v)).(T), true
	case int32:
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return zero, false
		}
		return any(int32(v)).(T), true
	case int64:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return zero, false
		}
		return any(v).(T), true
	case uint:
		v, err := strconv.ParseUint(text, 10, strconv.IntSize)
		if err != nil {
			return zero, false
		}
		return any(uint(v)).(T), true
	case uint8:
		v, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return zero, false
		}
		return any(uint8(v)).(T), true
	case uint16:
		v, err := strconv.ParseUint(text, 10, 16)
		if err != nil {
			return zero, false
		}
		return any(uint16(v)).(T), true
	case uint32:
		v, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return zero, false
		}
		return any(uint32(v)).(T), true
	case uint64:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return zero, false
		}
		return any(v).(T), true
	}
	return zero, false
}
