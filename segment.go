package lesk

import (
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// punktSentenceTokenizer is an extension of the Go implementation of the Punkt
// sentence tokenizer, trained on English.
type punktSentenceTokenizer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func newPunktSentenceTokenizer() *punktSentenceTokenizer {
	var pt punktSentenceTokenizer
	var err error

	pt.tokenizer, err = english.NewSentenceTokenizer(nil)
	checkError(err)

	return &pt
}

// segment splits text into sentences, dropping empty ones.
func (p *punktSentenceTokenizer) segment(text string) []string {
	var sents []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			sents = append(sents, t)
		}
	}
	return sents
}
