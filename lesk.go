package lesk

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// An Option configures a Disambiguator.
type Option func(d *Disambiguator)

// UsingTokenizer specifies the Tokenizer shared by context and glossaries.
func UsingTokenizer(tokenizer Tokenizer) Option {
	return func(d *Disambiguator) {
		d.tokenizer = tokenizer
	}
}

// WithPartOfSpeech restricts the candidate senses to one part of speech. The
// lexicon must implement PartOfSpeechLexicon.
func WithPartOfSpeech(pos PartOfSpeech) Option {
	return func(d *Disambiguator) {
		d.pos = pos
	}
}

// WithLanguage sets the language used to mark function words in each Score.
func WithLanguage(lang Language) Option {
	return func(d *Disambiguator) {
		d.language = lang
	}
}

// A Disambiguator runs Simplified Lesk against a Lexicon.
//
// It keeps no state between calls and is safe for concurrent use as long as
// its Lexicon and Tokenizer are.
type Disambiguator struct {
	lexicon   Lexicon
	tokenizer Tokenizer
	pos       PartOfSpeech
	language  Language
}

var (
	sharedTokenizer     *WordTokenizer
	sharedTokenizerOnce sync.Once
)

func defaultTokenizer() *WordTokenizer {
	sharedTokenizerOnce.Do(func() {
		sharedTokenizer = NewWordTokenizer()
	})
	return sharedTokenizer
}

// NewDisambiguator creates a Disambiguator over lexicon.
//
// For example,
//
//	db, _ := lesk.DefaultDatabase()
//	result, err := lesk.NewDisambiguator(db).Disambiguate("bank", sentence)
func NewDisambiguator(lexicon Lexicon, opts ...Option) *Disambiguator {
	d := &Disambiguator{
		lexicon:  lexicon,
		pos:      AnyPartOfSpeech,
		language: English,
	}
	for _, applyOpt := range opts {
		applyOpt(d)
	}
	if d.tokenizer == nil {
		d.tokenizer = defaultTokenizer()
	}
	return d
}

// Disambiguate picks the sense of word that best fits sentence.
//
// Every candidate is scored by the overlap between its glossary and the
// tokenized sentence, and a Score is recorded for each in resource order.
// The first candidate with the strictly largest overlap is chosen; when all
// candidates score zero, the first candidate is chosen.
//
// A word without candidate senses yields ErrNoSenses.
func (d *Disambiguator) Disambiguate(word, sentence string) (*Result, error) {
	senses, err := d.candidates(word)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Word:     word,
		Sentence: sentence,
		Context:  d.tokenizer.Tokenize(sentence),
		Scores:   make([]Score, 0, len(senses)),
	}

	counts := make([]float64, len(senses))
	for i, sense := range senses {
		glossary, err := d.Glossary(sense)
		if err != nil {
			return nil, err
		}

		overlap := ComputeOverlap(glossary, result.Context)
		result.Scores = append(result.Scores, Score{
			Sense:         sense,
			Overlap:       overlap,
			FunctionWords: functionWords(overlap.Words, d.language),
		})
		counts[i] = float64(overlap.Count)
	}

	// MaxIdx returns the first index of the maximum, so ties go to the
	// earliest sense and an all-zero run keeps senses[0].
	best := floats.MaxIdx(counts)
	result.Best = senses[best]
	result.MaxOverlap = result.Scores[best].Overlap.Count

	return result, nil
}

// candidates returns the senses of word, filtered by part of speech when
// requested.
func (d *Disambiguator) candidates(word string) ([]SenseID, error) {
	senses, err := d.lexicon.SensesFor(word)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", word, err)
	}

	if d.pos != AnyPartOfSpeech {
		posLexicon, ok := d.lexicon.(PartOfSpeechLexicon)
		if !ok {
			return nil, ErrNoPartOfSpeech
		}

		filtered := senses[:0:0]
		for _, sense := range senses {
			pos, err := posLexicon.PartOfSpeechOf(sense)
			if err != nil {
				return nil, fmt.Errorf("part of speech of %s: %w", sense, err)
			}
			if pos.matches(d.pos) {
				filtered = append(filtered, sense)
			}
		}
		senses = filtered
	}

	if len(senses) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSenses, word)
	}
	return senses, nil
}

// SimplifiedLesk disambiguates word in sentence against the embedded WordNet
// excerpt with default options.
func SimplifiedLesk(word, sentence string) (*Result, error) {
	db, err := DefaultDatabase()
	if err != nil {
		return nil, err
	}
	return NewDisambiguator(db).Disambiguate(word, sentence)
}
