package lesk

// ComputeOverlap intersects the token sets of a glossary and a context.
//
// Tokens match only when identical: no case folding or stemming. Repeated
// tokens on either side count once.
func ComputeOverlap(glossary, context []string) Overlap {
	contextSet := stringSet(context)

	shared := make(map[string]struct{})
	for _, tok := range glossary {
		if _, ok := contextSet[tok]; ok {
			shared[tok] = struct{}{}
		}
	}

	words := sortedKeys(shared)
	return Overlap{Count: len(words), Words: words}
}
