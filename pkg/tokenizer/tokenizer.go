// Package tokenizer splits raw text into sentences and normalized word
// tokens. Everything here is a pure string transform: no state, no I/O.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
)

// abbrevMarker temporarily replaces the period of abbreviation-like words
// ("Mr.", "Dr.", "U.S.") so the sentence splitter does not treat them as
// boundaries. Private-use rune, restored after splitting.
const abbrevMarker = "\uE000"

var (
	// A capitalized word ending in a period, followed by whitespace and
	// another capital letter. RE2 has no lookahead, so the trailing context
	// is captured and re-emitted; the replacement loop below compensates
	// for consecutive abbreviations whose context overlaps.
	abbrevRe = regexp.MustCompile(`([A-Z][A-Za-z]*)\.(\s+[A-Z])`)

	nonWordRe = regexp.MustCompile(`[^\w\s-]`)

	contractionRules = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`(?i)n't\b`), " not"},
		{regexp.MustCompile(`(?i)'ll\b`), " will"},
		{regexp.MustCompile(`(?i)'re\b`), " are"},
		{regexp.MustCompile(`(?i)'ve\b`), " have"},
		{regexp.MustCompile(`(?i)'m\b`), " am"},
		{regexp.MustCompile(`(?i)'s\b`), ""},
	}
)

// SplitSentences splits text into trimmed, non-empty sentences. A boundary
// is punctuation in {. ! ?} followed by whitespace and then an uppercase
// letter, an opening quote, or the end of the text. Text with no terminal
// punctuation comes back as a single sentence; empty or whitespace-only
// input yields nil. It never fails.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	protected := text
	for {
		replaced := abbrevRe.ReplaceAllString(protected, "${1}"+abbrevMarker+"${2}")
		if replaced == protected {
			break
		}
		protected = replaced
	}

	var sentences []string
	runes := []rune(protected)
	start := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
		default:
			continue
		}
		next := i + 1
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next == i+1 {
			continue // punctuation not followed by whitespace
		}
		if next < len(runes) && !unicode.IsUpper(runes[next]) && !isOpeningQuote(runes[next]) {
			continue
		}
		sentences = append(sentences, string(runes[start:i+1]))
		start = next
		i = next - 1
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}

	out := sentences[:0]
	for _, s := range sentences {
		s = strings.TrimSpace(strings.ReplaceAll(s, abbrevMarker, "."))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isOpeningQuote(r rune) bool {
	switch r {
	case '"', '\'', '“', '‘':
		return true
	}
	return false
}

// TokenizeWords normalizes a sentence into word tokens: contractions are
// expanded, text is lowercased, non-word characters (other than hyphens)
// become spaces, and each token is stemmed. With removeStopwords set,
// tokens in the stopword set are dropped. Identical input always produces
// an identical token sequence.
func TokenizeWords(sentence string, removeStopwords bool) []string {
	for _, rule := range contractionRules {
		sentence = rule.re.ReplaceAllString(sentence, rule.repl)
	}
	sentence = strings.ToLower(sentence)
	sentence = nonWordRe.ReplaceAllString(sentence, " ")

	fields := strings.Fields(sentence)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := StemWord(f)
		if removeStopwords && stopwords[t] {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// StemWord strips common suffixes from a word. The rules run in priority
// order and the first applicable one wins; a word no rule applies to is
// returned unchanged. This is a heuristic affix stripper, not a full
// stemmer: irregular forms come out wrong and that is accepted.
func StemWord(word string) string {
	if strings.Contains(word, "-") {
		parts := strings.Split(word, "-")
		for i, p := range parts {
			parts[i] = StemWord(p)
		}
		return strings.Join(parts, "-")
	}
	if strings.HasSuffix(word, "ing") && len(word) > 5 {
		if stem := word[:len(word)-3]; containsVowel(stem) {
			return stem
		}
	}
	if strings.HasSuffix(word, "ed") && len(word) > 4 {
		if stem := word[:len(word)-2]; containsVowel(stem) {
			return stem
		}
	}
	if strings.HasSuffix(word, "ly") && len(word) > 4 {
		return word[:len(word)-2]
	}
	if strings.HasSuffix(word, "ies") && len(word) > 4 {
		return word[:len(word)-3] + "y"
	}
	if strings.HasSuffix(word, "es") && len(word) > 3 {
		return word[:len(word)-2]
	}
	if strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 3 {
		return word[:len(word)-1]
	}
	return word
}

func containsVowel(s string) bool {
	return strings.ContainsAny(s, "aeiouy")
}
