package lesk

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// IsFunctionWord reports whether token carries no content in lang: a stop
// word such as "the" or "in", or bare punctuation.
//
// The stopwords library does not export its lists, so a token is classified
// by whether cleaning removes it entirely.
func IsFunctionWord(token string, lang Language) bool {
	return strings.TrimSpace(stopwords.CleanString(token, string(lang), false)) == ""
}

// functionWords returns the members of words that are function words, in
// the order given.
func functionWords(words []string, lang Language) []string {
	var out []string
	for _, w := range words {
		if IsFunctionWord(w, lang) {
			out = append(out, w)
		}
	}
	return out
}
