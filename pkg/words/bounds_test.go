package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsPattern(t *testing.T) {
	tests := []struct {
		name     string
		bounds   Bounds
		fragment string
		want     string
	}{
		{
			name:     "none is verbatim",
			bounds:   BoundNone,
			fragment: `cat`,
			want:     `cat`,
		},
		{
			name:     "start",
			bounds:   BoundStart,
			fragment: `cat`,
			want:     `(?<!\w)(?:cat)`,
		},
		{
			name:     "end",
			bounds:   BoundEnd,
			fragment: `cat`,
			want:     `(?:cat)(?!\w)`,
		},
		{
			name:     "both",
			bounds:   BoundBoth,
			fragment: `cat`,
			want:     `(?<!\w)(?:cat)(?!\w)`,
		},
		{
			name:     "alternation binds as a whole",
			bounds:   BoundBoth,
			fragment: `cat|dog`,
			want:     `(?<!\w)(?:cat|dog)(?!\w)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bounds.Pattern(tt.fragment))
		})
	}
}

func TestBoundsString(t *testing.T) {
	assert.Equal(t, "none", BoundNone.String())
	assert.Equal(t, "start", BoundStart.String())
	assert.Equal(t, "end", BoundEnd.String())
	assert.Equal(t, "both", BoundBoth.String())
}

func TestParseBounds(t *testing.T) {
	assert.Equal(t, BoundNone, ParseBounds("none"))
	assert.Equal(t, BoundStart, ParseBounds("start"))
	assert.Equal(t, BoundEnd, ParseBounds("end"))
	assert.Equal(t, BoundBoth, ParseBounds("both"))
	assert.Equal(t, BoundBoth, ParseBounds("anything else"))
}
