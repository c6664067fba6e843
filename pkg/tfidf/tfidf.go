// Package tfidf builds a term-weight table over a set of sentences, where
// each sentence acts as a pseudo-document for document-frequency purposes.
// Tables are built fresh per call and never cached.
package tfidf

import (
	"math"

	"github.com/skimtext/skim/pkg/tokenizer"
)

// Table maps a normalized token to its TF-IDF weight.
type Table map[string]float64

// BuildTable computes the weight table for a sentence collection.
// Term frequency is the total occurrence count across all sentences;
// document frequency counts the distinct sentences containing the token.
// Weight = tf * ln(N / df). Tokens are produced with stopword removal,
// so df >= 1 for every table entry and the ratio is always defined.
func BuildTable(sentences []string) Table {
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for _, s := range sentences {
		seen := make(map[string]bool)
		for _, t := range tokenizer.TokenizeWords(s, true) {
			termFreq[t]++
			if !seen[t] {
				docFreq[t]++
				seen[t] = true
			}
		}
	}

	table := make(Table, len(termFreq))
	total := float64(len(sentences))
	for term, tf := range termFreq {
		table[term] = float64(tf) * math.Log(total/float64(docFreq[term]))
	}
	return table
}

// SentenceScore returns the mean weight of the given tokens, 0 when the
// token list is empty. Tokens absent from the table contribute 0.
func (t Table) SentenceScore(tokens []string) float64 {
	var sum float64
	for _, tok := range tokens {
		sum += t[tok]
	}
	count := len(tokens)
	if count < 1 {
		count = 1
	}
	return sum / float64(count)
}
