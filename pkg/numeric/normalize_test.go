package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"123", true},
		{"-12", true},
		{"12.5", true},
		{"-0.5", true},
		{"", false},
		{"-", false},
		{"12.", false},
		{"1.2.3", false},
		{"12-", false},
		{"+5", false},
		{"1,5", false},
		{"12a", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumeric(tt.s))
		})
	}
}

func TestNormalizeDecimal(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		locale Locale
		want   string
	}{
		{
			name:   "standard grouping commas stripped",
			s:      "1,234.56",
			locale: LocaleStandard,
			want:   "1234.56",
		},
		{
			name:   "comma after dot is decimal",
			s:      "1.234,56",
			locale: LocaleStandard,
			want:   "1234.56",
		},
		{
			name:   "multiple dots mark dots as grouping",
			s:      "1.234.567,89",
			locale: LocaleStandard,
			want:   "1234567.89",
		},
		{
			name:   "single comma in standard is decimal",
			s:      "1,5",
			locale: LocaleStandard,
			want:   "1.5",
		},
		{
			name:   "european dot is grouping",
			s:      "2.500",
			locale: LocaleEuropean,
			want:   "2500",
		},
		{
			name:   "european comma is decimal",
			s:      "1.234,5",
			locale: LocaleEuropean,
			want:   "1234.5",
		},
		{
			name:   "plain number untouched",
			s:      "42",
			locale: LocaleStandard,
			want:   "42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDecimal(tt.s, tt.locale))
		})
	}
}

func TestNumericStrings(t *testing.T) {
	assert.Equal(t, []string{"12.50", "3"}, NumericStrings("£12.50 for 3", LocaleStandard))
	assert.Empty(t, NumericStrings("none", LocaleStandard))
}

func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "1250", StripNonDigits("£12.50"))
	assert.Equal(t, "", StripNonDigits("no digits"))
}

func TestStripNonNumeric(t *testing.T) {
	assert.Equal(t, "12.50 3", StripNonNumeric("£12.50 for 3 people"))
	assert.Equal(t, "", StripNonNumeric("no digits"))
}
