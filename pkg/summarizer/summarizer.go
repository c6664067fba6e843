// Package summarizer produces extractive summaries: it selects and
// reorders a subset of the original sentences, never generating new text.
// Scoring blends TF-IDF weight, graph rank, paragraph position, and
// sentence length. The pipeline is stateless and pure: the same input and
// options always produce the same output.
package summarizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/skimtext/skim/pkg/tokenizer"
)

// DefaultRatio is the fraction of sentences kept when no explicit target
// or ratio is supplied.
const DefaultRatio = 0.3

// Options control a single summarization call.
type Options struct {
	// Ratio is the fraction of sentences to keep; values <= 0 fall back
	// to DefaultRatio. Ignored when MaxSentences is set.
	Ratio float64

	// MaxSentences caps the summary length in sentences. Zero means
	// unset; the cap never exceeds the document's sentence count.
	MaxSentences int

	// DeduplicateSimilar drops near-duplicate sentences from the
	// selection (similarity above 0.6 to an already-kept sentence).
	DeduplicateSimilar bool

	// FavorPosition weights sentences near paragraph and document
	// boundaries higher. When off, every sentence gets a neutral 0.5
	// position score.
	FavorPosition bool
}

// sentence carries a sentence's text plus the metadata scoring needs.
// Created once during segmentation and never mutated afterwards.
type sentence struct {
	index     int // global document order, 0-based
	text      string
	paragraph int     // 0-based, dense
	length    int     // word count, stopwords included
	position  float64 // position score in [0,1]
}

var paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)

// Summarize returns an extractive summary of text. Empty or
// whitespace-only input yields an empty string; a document reducing to a
// single sentence is returned unchanged, bypassing scoring entirely.
func Summarize(text string, opts Options) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	paragraphs := splitParagraphs(norm.NFC.String(text))
	if len(paragraphs) == 0 {
		return ""
	}

	sentences := segment(paragraphs)
	if len(sentences) <= 1 {
		return text
	}

	assignPositionScores(sentences, len(paragraphs), opts.FavorPosition)
	scores := compositeScores(sentences)
	selected := selectSentences(sentences, scores, opts)
	return assemble(selected)
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphSplitRe.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// segment splits paragraphs into sentences with global indices strictly
// increasing in document order.
func segment(paragraphs []string) []sentence {
	var out []sentence
	for pIdx, para := range paragraphs {
		for _, text := range tokenizer.SplitSentences(para) {
			out = append(out, sentence{
				index:     len(out),
				text:      text,
				paragraph: pIdx,
				length:    len(tokenizer.TokenizeWords(text, false)),
			})
		}
	}
	return out
}

// assemble restores reading order's paragraph structure: sentences are
// grouped by paragraph in first-appearance order while walking the
// index-sorted selection, joined with a space within a paragraph and a
// blank line between paragraphs. Paragraphs with no selected sentence are
// omitted.
func assemble(selected []sentence) string {
	var order []int
	groups := make(map[int][]string)
	for _, s := range selected {
		if _, ok := groups[s.paragraph]; !ok {
			order = append(order, s.paragraph)
		}
		groups[s.paragraph] = append(groups[s.paragraph], s.text)
	}

	parts := make([]string, 0, len(order))
	for _, p := range order {
		parts = append(parts, strings.Join(groups[p], " "))
	}
	return strings.Join(parts, "\n\n")
}
