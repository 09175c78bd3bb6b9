package lesk

import (
	"golang.org/x/text/unicode/norm"
)

// WordTokenizer is the default Tokenizer. It NFC-normalizes the text, splits
// it into sentences with Punkt and then splits each sentence into words, so a
// sentence-final period becomes its own token while abbreviations survive.
//
// Tokens keep their case; "The" and "the" are different tokens.
type WordTokenizer struct {
	segmenter *punktSentenceTokenizer
	words     *iterTokenizer
}

// NewWordTokenizer creates a WordTokenizer. The options configure the word
// splitting stage.
func NewWordTokenizer(opts ...TokenizerOptFunc) *WordTokenizer {
	return &WordTokenizer{
		segmenter: newPunktSentenceTokenizer(),
		words:     NewIterTokenizer(opts...),
	}
}

// Tokenize splits text into word tokens in reading order.
func (t *WordTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, sent := range t.segmenter.segment(norm.NFC.String(text)) {
		tokens = append(tokens, t.words.Tokenize(sent)...)
	}
	return tokens
}
