package lesk

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/wordnet.json
var wordnetData []byte

// Format identifies the encoding of a lexicon document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks a Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// lexiconDocument is the on-disk layout of a lexicon:
//
//	{"synsets": [{"name": "bank.n.01", "pos": "n", "definition": "...",
//	              "examples": ["..."], "lemmas": ["bank"]}]}
type lexiconDocument struct {
	Synsets []Synset `json:"synsets" yaml:"synsets"`
}

// A Database is an in-memory, WordNet-style Lexicon. It is immutable once
// built and safe for concurrent use.
type Database struct {
	synsets map[SenseID]*Synset
	index   map[string][]SenseID // lemma -> senses in document order
}

var (
	defaultDB     *Database
	defaultDBErr  error
	defaultDBOnce sync.Once
)

// DefaultDatabase returns the embedded WordNet 3.0 excerpt. It is parsed on
// first use and shared afterwards.
func DefaultDatabase() (*Database, error) {
	defaultDBOnce.Do(func() {
		defaultDB, defaultDBErr = decodeDatabase(wordnetData, FormatJSON)
		if defaultDBErr != nil {
			defaultDBErr = fmt.Errorf("embedded lexicon: %w", defaultDBErr)
		}
	})
	return defaultDB, defaultDBErr
}

// DatabaseFromFile loads a lexicon from a JSON or YAML file, chosen by
// extension.
func DatabaseFromFile(path string) (*Database, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	db, err := decodeDatabase(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// LoadDatabase reads a lexicon document from r.
func LoadDatabase(r io.Reader, format Format) (*Database, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	return decodeDatabase(data, format)
}

func decodeDatabase(data []byte, format Format) (*Database, error) {
	var doc lexiconDocument

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse lexicon JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse lexicon YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	return NewDatabase(doc.Synsets)
}

// NewDatabase indexes synsets. Every synset needs a unique name, a valid
// part of speech and at least one lemma.
func NewDatabase(synsets []Synset) (*Database, error) {
	db := &Database{
		synsets: make(map[SenseID]*Synset, len(synsets)),
		index:   make(map[string][]SenseID),
	}

	for i := range synsets {
		syn := synsets[i]
		switch {
		case syn.Name == "":
			return nil, fmt.Errorf("synset %d: missing name", i)
		case !syn.POS.Valid():
			return nil, fmt.Errorf("synset %s: invalid part of speech %q", syn.Name, syn.POS)
		case len(syn.Lemmas) == 0:
			return nil, fmt.Errorf("synset %s: no lemmas", syn.Name)
		}
		if _, dup := db.synsets[syn.Name]; dup {
			return nil, fmt.Errorf("synset %s: duplicate name", syn.Name)
		}

		syn.Examples = append([]string(nil), syn.Examples...)
		syn.Lemmas = append([]string(nil), syn.Lemmas...)
		db.synsets[syn.Name] = &syn

		seen := map[string]bool{}
		for _, lemma := range syn.Lemmas {
			key := normalizeLemma(lemma)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			db.index[key] = append(db.index[key], syn.Name)
		}
	}

	// WordNet lists a lemma's senses noun first, then verb, adjective, adverb.
	for _, senses := range db.index {
		sort.SliceStable(senses, func(i, j int) bool {
			return db.synsets[senses[i]].POS.rank() < db.synsets[senses[j]].POS.rank()
		})
	}

	return db, nil
}

// SensesFor returns the senses of word in document order. Inflected forms
// fall back to their base form ("banks" -> "bank").
func (db *Database) SensesFor(word string) ([]SenseID, error) {
	key := normalizeLemma(word)
	if senses, ok := db.index[key]; ok {
		return append([]SenseID(nil), senses...), nil
	}
	return db.morphy(key), nil
}

// DefinitionOf returns the definition of a sense.
func (db *Database) DefinitionOf(id SenseID) (string, error) {
	syn, err := db.lookup(id)
	if err != nil {
		return "", err
	}
	return syn.Definition, nil
}

// ExamplesOf returns the usage examples of a sense in document order.
func (db *Database) ExamplesOf(id SenseID) ([]string, error) {
	syn, err := db.lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), syn.Examples...), nil
}

// PartOfSpeechOf returns the part of speech of a sense.
func (db *Database) PartOfSpeechOf(id SenseID) (PartOfSpeech, error) {
	syn, err := db.lookup(id)
	if err != nil {
		return "", err
	}
	return syn.POS, nil
}

// Synset returns a copy of the record for id.
func (db *Database) Synset(id SenseID) (Synset, bool) {
	syn, ok := db.synsets[id]
	if !ok {
		return Synset{}, false
	}
	out := *syn
	out.Examples = append([]string(nil), syn.Examples...)
	out.Lemmas = append([]string(nil), syn.Lemmas...)
	return out, true
}

// Len returns the number of synsets.
func (db *Database) Len() int {
	return len(db.synsets)
}

func (db *Database) lookup(id SenseID) (*Synset, error) {
	syn, ok := db.synsets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSense, id)
	}
	return syn, nil
}
