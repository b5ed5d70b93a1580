package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDigits(t *testing.T) {
	assert.True(t, HasDigits("room 101"))
	assert.False(t, HasDigits("no digits"))
	assert.False(t, HasDigits(""))
}

func TestHasDigitsRadix(t *testing.T) {
	assert.True(t, HasDigitsRadix("cafe", 16))
	assert.False(t, HasDigitsRadix("xyz", 16))
	assert.True(t, HasDigitsRadix("g", 17))
	assert.False(t, HasDigitsRadix("2", 2))
	assert.True(t, HasDigitsRadix("10", 2))
}

func TestIsDigitsOnly(t *testing.T) {
	assert.True(t, IsDigitsOnly("0123456789"))
	assert.False(t, IsDigitsOnly("12.5"))
	assert.False(t, IsDigitsOnly("-12"))
	assert.True(t, IsDigitsOnly(""))
}

func TestIsDigitsOnlyRadix(t *testing.T) {
	assert.True(t, IsDigitsOnlyRadix("DEADBEEF", 16))
	assert.True(t, IsDigitsOnlyRadix("deadbeef", 16))
	assert.False(t, IsDigitsOnlyRadix("deadbeeg", 16))
	assert.True(t, IsDigitsOnlyRadix("0101", 2))
	assert.False(t, IsDigitsOnlyRadix("012", 2))
}

func TestHasAlphanumeric(t *testing.T) {
	assert.True(t, HasAlphanumeric("!?a"))
	assert.True(t, HasAlphanumeric("!?1"))
	assert.True(t, HasAlphanumeric("ß"))
	assert.False(t, HasAlphanumeric("!?,"))
}

func TestHasAlphabetic(t *testing.T) {
	assert.True(t, HasAlphabetic("a1"))
	assert.False(t, HasAlphabetic("123"))
	assert.True(t, HasAlphabetic("日本語"))
}

func TestLocale(t *testing.T) {
	assert.Equal(t, "standard", LocaleStandard.String())
	assert.Equal(t, "european", LocaleEuropean.String())

	assert.Equal(t, LocaleEuropean, ParseLocale("european"))
	assert.Equal(t, LocaleEuropean, ParseLocale("euro"))
	assert.Equal(t, LocaleStandard, ParseLocale("standard"))
	assert.Equal(t, LocaleStandard, ParseLocale("unknown"))
}
