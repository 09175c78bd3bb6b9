package lesk

import (
	"sort"
	"strings"
)

// hasAnyPrefix reports whether s starts with one of prefixes and is longer
// than it.
func hasAnyPrefix(s string, prefixes []string) bool {
	n := len(s)
	for _, prefix := range prefixes {
		if n > len(prefix) && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// hasAnySuffix reports whether s ends with one of suffixes and is longer
// than it.
func hasAnySuffix(s string, suffixes []string) bool {
	n := len(s)
	for _, suffix := range suffixes {
		if n > len(suffix) && strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// hasAnyIndex returns the position of the first of subs found inside a longer
// s, or -1.
func hasAnyIndex(s string, subs []string) int {
	n := len(s)
	for _, sub := range subs {
		if idx := strings.Index(s, sub); idx >= 0 && n > len(sub) {
			return idx
		}
	}
	return -1
}

// stringSet builds a membership set from a token stream.
func stringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// sortedKeys returns the members of set in ascending order.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeLemma turns a lookup word into WordNet's lemma form:
// "Savings Bank" -> "savings_bank".
func normalizeLemma(word string) string {
	return strings.Join(strings.Fields(strings.ToLower(word)), "_")
}

func checkError(err error) {
	if err != nil {
		panic(err)
	}
}
