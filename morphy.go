package lesk

import "strings"

type detachment struct {
	suffix  string
	replace string
}

// WordNet's detachment rules, per part of speech.
var detachments = []struct {
	pos   PartOfSpeech
	rules []detachment
}{
	{Noun, []detachment{
		{"s", ""}, {"ses", "s"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	}},
	{Verb, []detachment{
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	}},
	{Adjective, []detachment{
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	}},
}

// morphy maps an inflected lemma onto the senses of its base forms. Only
// senses whose part of speech matches the rule that produced the base form
// are kept. Parts of speech are visited noun, verb, adjective.
func (db *Database) morphy(key string) []SenseID {
	var senses []SenseID
	seen := map[SenseID]bool{}

	for _, group := range detachments {
		for _, rule := range group.rules {
			if !strings.HasSuffix(key, rule.suffix) || len(key) == len(rule.suffix) {
				continue
			}
			base := strings.TrimSuffix(key, rule.suffix) + rule.replace
			for _, id := range db.index[base] {
				if seen[id] || !db.synsets[id].POS.matches(group.pos) {
					continue
				}
				seen[id] = true
				senses = append(senses, id)
			}
		}
	}

	return senses
}
