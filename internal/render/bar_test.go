package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	testCases := []struct {
		name       string
		percentage float64
		width      int
		expected   string
	}{
		{
			name:       "zero percent is all empty",
			percentage: 0,
			width:      20,
			expected:   strings.Repeat(EmptyBlock, 20),
		},
		{
			name:       "hundred percent is all filled",
			percentage: 100,
			width:      20,
			expected:   strings.Repeat(FullBlock, 20),
		},
		{
			name:       "seventy percent fills fourteen of twenty",
			percentage: 70,
			width:      20,
			expected:   strings.Repeat(FullBlock, 14) + strings.Repeat(EmptyBlock, 6),
		},
		{
			name:       "partial blocks are floored",
			percentage: 34.9,
			width:      10,
			expected:   strings.Repeat(FullBlock, 3) + strings.Repeat(EmptyBlock, 7),
		},
		{
			name:       "out of range input is clamped",
			percentage: 150,
			width:      5,
			expected:   strings.Repeat(FullBlock, 5),
		},
		{
			name:       "zero width renders nothing",
			percentage: 50,
			width:      0,
			expected:   "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Bar(tc.percentage, tc.width)
			assert.Equal(t, tc.expected, result)
			assert.Equal(t, tc.width, utf8.RuneCountInString(result))
		})
	}
}
