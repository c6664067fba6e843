package summarizer

import (
	"math"
	"sort"

	"github.com/skimtext/skim/pkg/textrank"
	"github.com/skimtext/skim/pkg/tfidf"
	"github.com/skimtext/skim/pkg/tokenizer"
)

// Composite score weights. TF-IDF dominates; graph rank, paragraph
// position, and length temper it.
const (
	tfidfWeight    = 0.4
	textrankWeight = 0.3
	positionWeight = 0.2
	lengthWeight   = 0.1
)

// dedupeThreshold is the similarity above which a candidate counts as a
// duplicate of an already-selected sentence.
const dedupeThreshold = 0.6

// assignPositionScores fills each sentence's position field. When
// favoring is off every sentence gets a neutral 0.5. Otherwise, within a
// paragraph the first sentence scores 1.0, the last (of two or more)
// 0.8, and interior sentences decay as 0.5 - 0.4*(local/count). The
// first paragraph is then boosted 1.2x, the last 1.1x; the first-
// paragraph check runs first, so a single-paragraph document only ever
// gets the 1.2x boost. Results are clamped to [0,1].
func assignPositionScores(sentences []sentence, paragraphCount int, favor bool) {
	if !favor {
		for i := range sentences {
			sentences[i].position = 0.5
		}
		return
	}

	byParagraph := make([][]int, paragraphCount)
	for i, s := range sentences {
		byParagraph[s.paragraph] = append(byParagraph[s.paragraph], i)
	}

	for pIdx, members := range byParagraph {
		count := len(members)
		for local, si := range members {
			var score float64
			switch {
			case local == 0:
				score = 1.0
			case local == count-1:
				score = 0.8
			default:
				score = 0.5 - 0.4*float64(local)/float64(count)
			}

			if pIdx == 0 {
				score *= 1.2
			} else if pIdx == paragraphCount-1 {
				score *= 1.1
			}

			sentences[si].position = math.Min(1, math.Max(0, score))
		}
	}
}

// compositeScores blends the per-sentence signals into one score per
// global index: 0.4*avgTfIdf + 0.3*textRank + 0.2*position + 0.1*length.
// Length is soft-capped at ten words so long sentences stop gaining.
func compositeScores(sentences []sentence) map[int]float64 {
	texts := make([]string, len(sentences))
	for i, s := range sentences {
		texts[i] = s.text
	}

	table := tfidf.BuildTable(texts)
	ranks := textrank.RankSentences(texts)

	scores := make(map[int]float64, len(sentences))
	for i, s := range sentences {
		avgTfIdf := table.SentenceScore(tokenizer.TokenizeWords(s.text, true))
		lengthScore := math.Min(1, float64(s.length)/10)
		scores[s.index] = tfidfWeight*avgTfIdf +
			textrankWeight*ranks[i] +
			positionWeight*s.position +
			lengthWeight*lengthScore
	}
	return scores
}

// selectSentences picks the target number of sentences by descending
// composite score, optionally dropping near-duplicates, and returns them
// re-sorted into original document order.
func selectSentences(sentences []sentence, scores map[int]float64, opts Options) []sentence {
	target := targetCount(len(sentences), opts)

	ranked := make([]sentence, len(sentences))
	copy(ranked, sentences)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].index] > scores[ranked[j].index]
	})

	var selected []sentence
	if opts.DeduplicateSimilar {
		// Over-sample so duplicate removal can still fill the target.
		pool := ranked
		if len(pool) > 2*target {
			pool = pool[:2*target]
		}
		for _, cand := range pool {
			if len(selected) == target {
				break
			}
			if isDuplicate(cand, selected) {
				continue
			}
			selected = append(selected, cand)
		}
	} else {
		if len(ranked) > target {
			ranked = ranked[:target]
		}
		selected = ranked
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].index < selected[j].index
	})
	return selected
}

func targetCount(total int, opts Options) int {
	if opts.MaxSentences > 0 {
		if opts.MaxSentences < total {
			return opts.MaxSentences
		}
		return total
	}
	ratio := opts.Ratio
	if ratio <= 0 {
		ratio = DefaultRatio
	}
	target := int(math.Floor(float64(total) * ratio))
	if target < 1 {
		target = 1
	}
	return target
}

func isDuplicate(cand sentence, selected []sentence) bool {
	for _, s := range selected {
		if textrank.CalculateSimilarity(cand.text, s.text) > dedupeThreshold {
			return true
		}
	}
	return false
}
