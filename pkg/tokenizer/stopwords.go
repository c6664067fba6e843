package tokenizer

// stopwords is the fixed English stopword set, matched against lowercase
// tokens. Tokens are stemmed before the stopword check runs, so each entry
// is indexed under both its literal and stemmed form ("this" stems to
// "thi" and must still be caught).
var stopwords = map[string]bool{}

func init() {
	for _, w := range stopwordList {
		stopwords[w] = true
		stopwords[StemWord(w)] = true
	}
}

var stopwordList = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "cannot",
	"could", "did", "do", "does", "down", "during", "each", "few", "for",
	"from", "further", "had", "has", "have", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into",
	"is", "it", "its", "itself", "just", "me", "more", "most", "my",
	"myself", "no", "nor", "not", "now", "of", "off", "on", "once", "only",
	"or", "other", "our", "ours", "ourselves", "out", "over", "own", "same",
	"she", "should", "so", "some", "such", "than", "that", "the", "their",
	"theirs", "them", "themselves", "then", "there", "these", "they",
	"this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "we", "were", "what", "when", "where", "which", "while",
	"who", "whom", "why", "will", "with", "would", "you", "your", "yours",
	"yourself", "yourselves",
}
