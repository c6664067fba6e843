// Package textrank ranks sentences by importance using power iteration
// over a sentence-similarity graph (PageRank over similarity edges).
package textrank

import (
	"math"

	"github.com/skimtext/skim/pkg/tokenizer"
)

const (
	// dampingFactor is the probability of following a similarity edge
	// versus teleporting uniformly.
	dampingFactor = 0.85

	maxIterations = 50

	// convergenceThreshold bounds the Euclidean distance between
	// successive score vectors; iteration stops early below it.
	convergenceThreshold = 0.0001
)

// CalculateSimilarity computes the similarity of two sentences over their
// binary term-presence sets (stopwords removed, duplicates collapsed):
// |intersection| / (sqrt(|A|) * sqrt(|B|)). Result is in [0,1], symmetric,
// and 0 when either sentence has no qualifying tokens.
func CalculateSimilarity(a, b string) float64 {
	return setSimilarity(tokenSet(a), tokenSet(b))
}

func tokenSet(sentence string) map[string]bool {
	tokens := tokenizer.TokenizeWords(sentence, true)
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func setSimilarity(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for t := range a {
		if b[t] {
			intersection++
		}
	}
	return float64(intersection) / (math.Sqrt(float64(len(a))) * math.Sqrt(float64(len(b))))
}

// RankSentences scores each sentence by iterating a stochastic matrix
// built from pairwise similarities. The result has one score per input
// sentence, in input order. Scores for an empty input are empty and a
// single sentence scores 1. If the iteration has not converged after
// maxIterations rounds the last iterate is returned as-is.
func RankSentences(sentences []string) []float64 {
	n := len(sentences)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{1}
	}

	sets := make([]map[string]bool, n)
	for i, s := range sentences {
		sets[i] = tokenSet(s)
	}

	// Similarity matrix with a zeroed diagonal: a sentence never votes
	// for itself.
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i != j {
				matrix[i][j] = setSimilarity(sets[i], sets[j])
			}
		}
	}

	// Row-normalize into a stochastic matrix. A sentence sharing no
	// tokens with any other gets a uniform row instead of a zero row.
	uniform := 1.0 / float64(n)
	for i := range matrix {
		var rowSum float64
		for _, v := range matrix[i] {
			rowSum += v
		}
		for j := range matrix[i] {
			if rowSum == 0 {
				matrix[i][j] = uniform
			} else {
				matrix[i][j] /= rowSum
			}
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = uniform
	}

	teleport := (1 - dampingFactor) / float64(n)
	for iter := 0; iter < maxIterations; iter++ {
		next := make([]float64, n)
		for i := 0; i < n; i++ {
			var sum float64
			for j := 0; j < n; j++ {
				if j != i {
					sum += matrix[j][i] * scores[j]
				}
			}
			next[i] = dampingFactor*sum + teleport
		}

		var dist float64
		for i := range next {
			d := next[i] - scores[i]
			dist += d * d
		}
		scores = next
		if math.Sqrt(dist) < convergenceThreshold {
			break
		}
	}
	return scores
}
