package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstNumber(t *testing.T) {
	v, ok := FirstNumber[float64]("Price £12.50 each", LocaleStandard)
	require.True(t, ok)
	assert.Equal(t, 12.50, v)

	n, ok := FirstNumber[int]("Price -5 today", LocaleStandard)
	require.True(t, ok)
	assert.Equal(t, -5, n)

	// The first token decides: a fractional token does not parse as int and
	// later integers are not consulted.
	_, ok = FirstNumber[int]("1.5 then 2", LocaleStandard)
	assert.False(t, ok)

	_, ok = FirstNumber[float64]("no numbers", LocaleStandard)
	assert.False(t, ok)
}

func TestFirstNumberOverflow(t *testing.T) {
	_, ok := FirstNumber[uint8]("300 apples", LocaleStandard)
	assert.False(t, ok)

	v, ok := FirstNumber[uint8]("200 apples", LocaleStandard)
	require.True(t, ok)
	assert.Equal(t, uint8(200), v)

	_, ok = FirstNumber[uint]("-5 degrees", LocaleStandard)
	assert.False(t, ok)
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, []float64{-78.29826, 34.15, 160.9},
		Numbers[float64]("-78.29826, 34.15 160.9", LocaleStandard))

	// Unparseable tokens are skipped, not fatal.
	assert.Equal(t, []int64{2}, Numbers[int64]("1.5 then 2", LocaleStandard))

	assert.Equal(t, []float64{2500}, Numbers[float64]("2.500 grammi", LocaleEuropean))

	assert.Empty(t, Numbers[float64]("none", LocaleStandard))
}

func TestShorthands(t *testing.T) {
	v, ok := FirstFloat("around 2.5 today")
	require.True(t, ok)
	assert.Equal(t, 2.5, v)

	n, ok := FirstInt("take 42 away")
	require.True(t, ok)
	assert.Equal(t, int64(42), n)

	assert.Equal(t, []float64{1.5, 2}, Floats("1.5 and 2"))
	assert.Equal(t, []int64{1, 2}, Ints("1 and 2"))
}
