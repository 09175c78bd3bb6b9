package lesk

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Tokenizer splits text into word tokens.
//
// Glossaries and contexts must be tokenized by the same Tokenizer, otherwise
// their overlap is meaningless.
type Tokenizer interface {
	Tokenize(text string) []string
}

type TokenTester func(string) bool

// iterTokenizer splits a single sentence into words.
type iterTokenizer struct {
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	contractions   []string
	splitCases     []string
	suffixes       []string
	prefixes       []string
	emoticons      map[string]int
	isUnsplittable TokenTester
}

type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// Use the provided special regex for unsplittable tokens.
func UsingSpecialRE(x *regexp.Regexp) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.specialRE = x
	}
}

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.sanitizer = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.suffixes = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.prefixes = x
	}
}

// Use the provided map of emoticons.
func UsingEmoticons(x map[string]int) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.emoticons = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.contractions = x
	}
}

// NewIterTokenizer returns the rule-based word splitter used inside
// WordTokenizer. It does no sentence segmentation of its own.
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	tok.contractions = contractions
	tok.emoticons = emoticons
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	tok.splitCases = append(tok.splitCases, tok.contractions...)

	return tok
}

func addToken(s string, toks []string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func (t *iterTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

// doSplit peels prefixes, contractions and trailing punctuation off one
// whitespace-delimited span.
func (t *iterTokenizer) doSplit(token string) []string {
	var tokens, suffs []string

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// Emoticons and abbreviations are kept whole.
			tokens = addToken(token, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// $100 -> [$, 100].
			tokens = addToken(string(token[0]), tokens)
			token = token[1:]
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > 0 {
			// they'll -> [they, 'll].
			// don't -> [do, n't].
			tokens = addToken(token[:idx], tokens)
			token = token[idx:]
		} else if hasAnySuffix(token, t.suffixes) {
			// water) -> [water, )].
			suffs = append([]string{string(token[len(token)-1])}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = addToken(token, tokens)
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words.
func (t *iterTokenizer) Tokenize(text string) []string {
	var tokens []string

	clean := t.sanitizer.Replace(text)
	cache := map[string][]string{}

	start := -1
	for index, r := range clean {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = t.splitSpan(clean[start:index], cache, tokens)
				start = -1
			}
		} else if start < 0 {
			start = index
		}
	}
	if start >= 0 {
		tokens = t.splitSpan(clean[start:], cache, tokens)
	}

	return tokens
}

func (t *iterTokenizer) splitSpan(span string, cache map[string][]string, tokens []string) []string {
	toks, found := cache[span]
	if !found {
		toks = t.doSplit(span)
		cache[span] = toks
	}
	return append(tokens, toks...)
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var contractions = []string{"'ll", "'s", "'re", "'m", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}
var emoticons = map[string]int{
	"(-8":      1,
	"(-;":      1,
	"(:":       1,
	"(=":       1,
	"8-)":      1,
	":(":       1,
	":-)":      1,
	":-/":      1,
	":-P":      1,
	":-p":      1,
	":-|":      1,
	":)":       1,
	":P":       1,
	":]":       1,
	":o":       1,
	"=(":       1,
	"=)":       1,
	"O.o":      1,
	"o_O":      1,
	"o_o":      1,
	"xD":       1,
	"¯\\(ツ)/¯": 1,
}
