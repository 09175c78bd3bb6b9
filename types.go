package lesk

import "errors"

// A SenseID names one sense in a lexical resource, e.g. "bank.n.01".
//
// The disambiguator treats it as opaque; only the Lexicon knows how to
// resolve it.
type SenseID string

// String returns the identifier text.
func (id SenseID) String() string {
	return string(id)
}

// PartOfSpeech is a WordNet part-of-speech code.
type PartOfSpeech string

const (
	Noun            PartOfSpeech = "n"
	Verb            PartOfSpeech = "v"
	Adjective       PartOfSpeech = "a"
	AdjectiveSat    PartOfSpeech = "s" // Satellite adjective.
	Adverb          PartOfSpeech = "r"
	AnyPartOfSpeech PartOfSpeech = ""
)

// Valid reports whether pos is one of the WordNet codes.
func (pos PartOfSpeech) Valid() bool {
	switch pos {
	case Noun, Verb, Adjective, AdjectiveSat, Adverb:
		return true
	}
	return false
}

// rank orders parts of speech the way WordNet lists senses.
func (pos PartOfSpeech) rank() int {
	switch pos {
	case Noun:
		return 0
	case Verb:
		return 1
	case Adjective, AdjectiveSat:
		return 2
	}
	return 3
}

// matches reports whether a sense tagged with pos satisfies a filter for want.
// Satellite adjectives count as adjectives.
func (pos PartOfSpeech) matches(want PartOfSpeech) bool {
	if want == AnyPartOfSpeech || pos == want {
		return true
	}
	return want == Adjective && pos == AdjectiveSat
}

// A Synset is one sense as stored in a Database.
type Synset struct {
	Name       SenseID      `json:"name" yaml:"name"`
	POS        PartOfSpeech `json:"pos" yaml:"pos"`
	Definition string       `json:"definition" yaml:"definition"`
	Examples   []string     `json:"examples,omitempty" yaml:"examples,omitempty"`
	Lemmas     []string     `json:"lemmas" yaml:"lemmas"`
}

// An Overlap is the set intersection of a glossary and a context.
type Overlap struct {
	Count int      // Number of distinct shared tokens; always len(Words).
	Words []string // The shared tokens, sorted.
}

// A Score is the diagnostic record produced for one candidate sense.
type Score struct {
	Sense   SenseID
	Overlap Overlap

	// FunctionWords lists the overlap words that are stop words or bare
	// punctuation. It is informational and never affects selection.
	FunctionWords []string
}

// A Result holds everything a disambiguation run produced.
type Result struct {
	Word     string
	Sentence string
	Context  []string // The tokenized sentence.
	Scores   []Score  // One per candidate, in resource order.

	Best       SenseID
	MaxOverlap int
}

// Language represents a stop-word language.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)

var (
	// ErrNoSenses is returned when a word has no candidate senses.
	ErrNoSenses = errors.New("no senses found for word")

	// ErrUnknownSense is returned by a Lexicon for an id it does not hold.
	ErrUnknownSense = errors.New("unknown sense")

	// ErrNoPartOfSpeech is returned when a part-of-speech filter is requested
	// from a Lexicon that cannot report parts of speech.
	ErrNoPartOfSpeech = errors.New("lexicon does not report parts of speech")

	// ErrUnknownFormat is returned for lexicon files of an unsupported format.
	ErrUnknownFormat = errors.New("unknown lexicon format")
)
