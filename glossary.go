package lesk

import "fmt"

// ExtractGlossary returns the token stream of a sense: the tokens of its
// definition followed by the tokens of each example, in resource order.
// Duplicates are kept.
func ExtractGlossary(lexicon Lexicon, tokenizer Tokenizer, id SenseID) ([]string, error) {
	definition, err := lexicon.DefinitionOf(id)
	if err != nil {
		return nil, fmt.Errorf("definition of %s: %w", id, err)
	}

	examples, err := lexicon.ExamplesOf(id)
	if err != nil {
		return nil, fmt.Errorf("examples of %s: %w", id, err)
	}

	glossary := tokenizer.Tokenize(definition)
	for _, example := range examples {
		glossary = append(glossary, tokenizer.Tokenize(example)...)
	}
	return glossary, nil
}

// Glossary returns the glossary of a sense using the disambiguator's lexicon
// and tokenizer.
func (d *Disambiguator) Glossary(id SenseID) ([]string, error) {
	return ExtractGlossary(d.lexicon, d.tokenizer, id)
}
