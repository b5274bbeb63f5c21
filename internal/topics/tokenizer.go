package topics

import (
	"regexp"
	"strings"
)

var (
	urlPattern    = regexp.MustCompile(`https?://\S+|www\.\S+`)
	nonWordRunes  = regexp.MustCompile(`[^\w\s-]`)
	numberPattern = regexp.MustCompile(`\b\d+\b`)
)

// Tokenize lowercases text, strips URLs, punctuation and bare numbers,
// and drops stopwords and tokens shorter than three characters.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = nonWordRunes.ReplaceAllString(text, " ")
	text = numberPattern.ReplaceAllString(text, "")

	words := strings.Fields(text)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, "-_")
		if len(w) <= 2 || isStopword(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
