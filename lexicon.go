package lesk

// A Lexicon is a read-only lexical resource: the candidate senses of a word
// and, per sense, a definition and usage examples.
//
// SensesFor must return senses in the resource's own order; the first sense
// wins every tie. An unknown word yields an empty slice, not an error.
type Lexicon interface {
	SensesFor(word string) ([]SenseID, error)
	DefinitionOf(id SenseID) (string, error)
	ExamplesOf(id SenseID) ([]string, error)
}

// A PartOfSpeechLexicon can also report the part of speech of a sense. It is
// required by WithPartOfSpeech.
type PartOfSpeechLexicon interface {
	Lexicon
	PartOfSpeechOf(id SenseID) (PartOfSpeech, error)
}
