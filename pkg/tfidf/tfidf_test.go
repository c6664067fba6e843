package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTable(t *testing.T) {
	sentences := []string{
		"Cats chase mice.",
		"Dogs chase cats.",
		"Birds fly high.",
	}
	table := BuildTable(sentences)

	// "cat" and "chase" appear twice across the collection and in two of
	// the three pseudo-documents: weight = 2 * ln(3/2).
	assert.InDelta(t, 2*math.Log(1.5), table["cat"], 1e-9)
	assert.InDelta(t, 2*math.Log(1.5), table["chase"], 1e-9)

	// "mice" appears once in one sentence: weight = ln(3).
	assert.InDelta(t, math.Log(3), table["mice"], 1e-9)

	_, ok := table["the"]
	assert.False(t, ok, "stopwords must not enter the table")
}

func TestBuildTableUbiquitousTermWeighsZero(t *testing.T) {
	table := BuildTable([]string{"cats run", "cats sleep"})
	// df == N makes ln(N/df) zero regardless of term frequency.
	assert.InDelta(t, 0, table["cat"], 1e-9)
	assert.InDelta(t, math.Log(2), table["run"], 1e-9)
}

func TestBuildTableEmpty(t *testing.T) {
	assert.Empty(t, BuildTable(nil))
	assert.Empty(t, BuildTable([]string{}))
}

func TestSentenceScore(t *testing.T) {
	table := Table{"alpha": 2, "beta": 4}

	tests := []struct {
		name     string
		tokens   []string
		expected float64
	}{
		{"mean of known tokens", []string{"alpha", "beta"}, 3},
		{"unknown tokens contribute zero", []string{"alpha", "gamma"}, 1},
		{"no tokens", nil, 0},
		{"single token", []string{"beta"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, table.SentenceScore(tt.tokens), 1e-9)
		})
	}
}
