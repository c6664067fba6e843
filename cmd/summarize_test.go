package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "short line untouched",
			input:    "fits on one line",
			width:    40,
			expected: "fits on one line",
		},
		{
			name:     "wraps at word boundary",
			input:    "alpha beta gamma delta",
			width:    11,
			expected: "alpha beta\ngamma delta",
		},
		{
			name:     "word longer than width stays intact",
			input:    "a supercalifragilistic word",
			width:    10,
			expected: "a\nsupercalifragilistic\nword",
		},
		{
			name:     "paragraph breaks preserved",
			input:    "first paragraph here\n\nsecond paragraph here",
			width:    80,
			expected: "first paragraph here\n\nsecond paragraph here",
		},
		{
			name:     "empty input",
			input:    "",
			width:    80,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrapText(tt.input, tt.width))
		})
	}
}

func TestResolveWidthExplicit(t *testing.T) {
	assert.Equal(t, 120, resolveWidth(120))
	assert.Equal(t, 1, resolveWidth(1))
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput([]string{"/nonexistent/path/to/input.txt"})
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to read"))
}
