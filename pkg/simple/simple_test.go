package simple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartsWithCI(t *testing.T) {
	assert.True(t, StartsWithCI("Hello World", "hello"))
	assert.True(t, StartsWithCI("hello world", "HELLO"))
	assert.False(t, StartsWithCI("Hello World", "world"))
}

func TestEndsWithCI(t *testing.T) {
	assert.True(t, EndsWithCI("Hello World", "WORLD"))
	assert.False(t, EndsWithCI("Hello World", "hello"))
}

func TestContainsCI(t *testing.T) {
	assert.True(t, ContainsCI("Hello World", "LO wo"))
	assert.False(t, ContainsCI("Hello World", "planet"))
}

func TestAlphanumVariants(t *testing.T) {
	assert.True(t, StartsWithCIAlphanum("N.Y.C. subway", "nyc"))
	assert.False(t, StartsWithCIAlphanum("N.Y.C. subway", "subway"))

	assert.True(t, EndsWithCIAlphanum("route 66!", "66"))
	assert.False(t, EndsWithCIAlphanum("route 66!", "route"))

	assert.True(t, ContainsCIAlphanum("New York City", "yorkcity"))
	assert.False(t, ContainsCIAlphanum("New York City", "york town"))
}

func TestStripNonAlphanum(t *testing.T) {
	assert.Equal(t, "NYC66", StripNonAlphanum("N.Y.C. 66!"))
	assert.Equal(t, "日本語abc", StripNonAlphanum("日本語 abc?"))
	assert.Equal(t, "", StripNonAlphanum("?!-"))
}

func TestMatchedIndices(t *testing.T) {
	assert.Equal(t, []int{0, 3}, MatchedIndices("ab ab ab", "ab "))
	assert.Nil(t, MatchedIndices("abc", "z"))
	assert.Nil(t, MatchedIndices("abc", ""))

	// Occurrences do not overlap.
	assert.Equal(t, []int{0, 2}, MatchedIndices("aaaa", "aa"))
}
