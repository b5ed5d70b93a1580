package matchset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern(t *testing.T) {
	tests := []struct {
		name string
		set  *Set
		want string
	}{
		{
			name: "core only",
			set:  New(`\d+`, false),
			want: `(?:\d+)`,
		},
		{
			name: "positive lookbehind",
			set:  New(`\d+`, false).LookBehind(`£`, true),
			want: `(?<=£)(?:\d+)`,
		},
		{
			name: "negative lookbehind",
			set:  New(`\d+`, false).LookBehind(`£`, false),
			want: `(?<!£)(?:\d+)`,
		},
		{
			name: "positive lookahead",
			set:  New(`\d+`, false).LookAhead(`%`, true),
			want: `(?:\d+)(?=%)`,
		},
		{
			name: "both sides",
			set:  New(`\d+`, false).LookBehind(`£`, true).LookAhead(`\s*each`, false),
			want: `(?<=£)(?:\d+)(?!\s*each)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.set.Pattern()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatternEmptyCore(t *testing.T) {
	_, err := New("", false).Pattern()
	assert.ErrorIs(t, err, ErrEmptyPattern)
}

func TestMatchString(t *testing.T) {
	set := New(`\d+`, false).LookBehind(`£`, true)

	ok, err := set.MatchString("Price £12 each")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = set.MatchString("Price $12 each")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCaseSensitivity(t *testing.T) {
	set := New(`price`, false).CaseInsensitive()
	assert.True(t, set.Matches("PRICE list"))

	set.CaseSensitive()
	assert.False(t, set.Matches("PRICE list"))
}

func TestMatchesLenient(t *testing.T) {
	assert.False(t, New(`(unclosed`, false).Matches("anything"))
}

func TestFindAllStrings(t *testing.T) {
	set := New(`\d+`, false).LookBehind(`£`, true)
	assert.Equal(t, []string{"12", "9"}, set.FindAllStrings("£12 or $5 or £9"))
	assert.Nil(t, New(`(unclosed`, false).FindAllStrings("anything"))
}

func TestReplace(t *testing.T) {
	set := New(`\d+`, false).LookBehind(`£`, true)

	got, err := set.Replace("£12 or $5", "#")
	require.NoError(t, err)
	assert.Equal(t, "£# or $5", got)

	// The lookaround context survives the replacement.
	set = New(`cat`, false).LookAhead(`alog`, false)
	got, err = set.Replace("cat catalog", "dog")
	require.NoError(t, err)
	assert.Equal(t, "dog catalog", got)
}
