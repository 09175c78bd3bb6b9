package lesk

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const testLexiconJSON = `{
  "synsets": [
    {"name": "pine.n.01", "pos": "n", "definition": "a coniferous tree", "lemmas": ["pine", "pine_tree"]},
    {"name": "pine.v.02", "pos": "v", "definition": "lose vigor through grief", "examples": ["she pined away"], "lemmas": ["pine"]},
    {"name": "cone.n.01", "pos": "n", "definition": "any cone-shaped artifact", "lemmas": ["Cone"]}
  ]
}`

const testLexiconYAML = `
synsets:
  - name: pine.n.01
    pos: n
    definition: a coniferous tree
    lemmas: [pine, pine_tree]
  - name: pine.v.02
    pos: v
    definition: lose vigor through grief
    examples:
      - she pined away
    lemmas: [pine]
  - name: cone.n.01
    pos: n
    definition: any cone-shaped artifact
    lemmas: [Cone]
`

func TestDefaultDatabase(t *testing.T) {
	db, err := DefaultDatabase()
	if err != nil {
		t.Fatalf("Failed to load default database: %v", err)
	}
	if db.Len() != 42 {
		t.Errorf("Len() = %d, want 42", db.Len())
	}

	senses, err := db.SensesFor("bank")
	if err != nil {
		t.Fatalf("SensesFor failed: %v", err)
	}
	if len(senses) != 18 {
		t.Fatalf("bank has %d senses, want 18", len(senses))
	}
	if senses[0] != "bank.n.01" || senses[1] != "depository_financial_institution.n.01" || senses[17] != "trust.v.01" {
		t.Errorf("unexpected sense order: %v", senses)
	}

	again, _ := DefaultDatabase()
	if again != db {
		t.Error("DefaultDatabase should return the shared instance")
	}
}

func TestLoadDatabaseFormats(t *testing.T) {
	fromJSON, err := LoadDatabase(strings.NewReader(testLexiconJSON), FormatJSON)
	if err != nil {
		t.Fatalf("JSON load failed: %v", err)
	}
	fromYAML, err := LoadDatabase(strings.NewReader(testLexiconYAML), FormatYAML)
	if err != nil {
		t.Fatalf("YAML load failed: %v", err)
	}

	if !reflect.DeepEqual(fromJSON, fromYAML) {
		t.Errorf("JSON and YAML lexicons differ")
	}

	examples, err := fromYAML.ExamplesOf("pine.v.02")
	if err != nil {
		t.Fatalf("ExamplesOf failed: %v", err)
	}
	if !reflect.DeepEqual(examples, []string{"she pined away"}) {
		t.Errorf("ExamplesOf = %q", examples)
	}
}

func TestDatabaseValidation(t *testing.T) {
	tests := []struct {
		name    string
		synsets []Synset
		wantErr string
	}{
		{"missing name", []Synset{{POS: Noun, Lemmas: []string{"x"}}}, "missing name"},
		{"bad part of speech", []Synset{{Name: "x.q.01", POS: "q", Lemmas: []string{"x"}}}, "invalid part of speech"},
		{"no lemmas", []Synset{{Name: "x.n.01", POS: Noun}}, "no lemmas"},
		{"duplicate", []Synset{
			{Name: "x.n.01", POS: Noun, Lemmas: []string{"x"}},
			{Name: "x.n.01", POS: Noun, Lemmas: []string{"x"}},
		}, "duplicate name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDatabase(tt.synsets)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadDatabase(strings.NewReader("{not json"), FormatJSON); err == nil {
		t.Error("expected a parse error for malformed JSON")
	}
	if _, err := LoadDatabase(strings.NewReader("{}"), Format(99)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestDatabaseFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "lexicon.yml")
	if err := os.WriteFile(yamlPath, []byte(testLexiconYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	db, err := DatabaseFromFile(yamlPath)
	if err != nil {
		t.Fatalf("DatabaseFromFile failed: %v", err)
	}
	if db.Len() != 3 {
		t.Errorf("Len() = %d, want 3", db.Len())
	}

	txtPath := filepath.Join(dir, "lexicon.txt")
	if err := os.WriteFile(txtPath, []byte(testLexiconJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := DatabaseFromFile(txtPath); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}

	if _, err := DatabaseFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDatabaseLookup(t *testing.T) {
	db, err := LoadDatabase(strings.NewReader(testLexiconJSON), FormatJSON)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	tests := []struct {
		word string
		want []SenseID
	}{
		{"pine", []SenseID{"pine.n.01", "pine.v.02"}},
		{"  PINE ", []SenseID{"pine.n.01", "pine.v.02"}},
		{"pine tree", []SenseID{"pine.n.01"}},
		{"cone", []SenseID{"cone.n.01"}},
		{"spruce", nil},
	}

	for _, tt := range tests {
		got, err := db.SensesFor(tt.word)
		if err != nil {
			t.Fatalf("SensesFor(%q) failed: %v", tt.word, err)
		}
		if len(got) != len(tt.want) || (len(got) > 0 && !reflect.DeepEqual(got, tt.want)) {
			t.Errorf("SensesFor(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}

	def, err := db.DefinitionOf("pine.n.01")
	if err != nil || def != "a coniferous tree" {
		t.Errorf("DefinitionOf = %q, %v", def, err)
	}
	pos, err := db.PartOfSpeechOf("pine.v.02")
	if err != nil || pos != Verb {
		t.Errorf("PartOfSpeechOf = %q, %v", pos, err)
	}

	if _, err := db.DefinitionOf("oak.n.01"); !errors.Is(err, ErrUnknownSense) {
		t.Errorf("DefinitionOf unknown: err = %v", err)
	}
	if _, err := db.ExamplesOf("oak.n.01"); !errors.Is(err, ErrUnknownSense) {
		t.Errorf("ExamplesOf unknown: err = %v", err)
	}
	if _, err := db.PartOfSpeechOf("oak.n.01"); !errors.Is(err, ErrUnknownSense) {
		t.Errorf("PartOfSpeechOf unknown: err = %v", err)
	}
}

func TestDatabaseReturnsCopies(t *testing.T) {
	db, err := LoadDatabase(strings.NewReader(testLexiconJSON), FormatJSON)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	senses, _ := db.SensesFor("pine")
	senses[0] = "mutated"
	examples, _ := db.ExamplesOf("pine.v.02")
	examples[0] = "mutated"
	syn, ok := db.Synset("pine.v.02")
	if !ok {
		t.Fatal("Synset not found")
	}
	syn.Lemmas[0] = "mutated"

	senses, _ = db.SensesFor("pine")
	examples, _ = db.ExamplesOf("pine.v.02")
	syn, _ = db.Synset("pine.v.02")
	if senses[0] != "pine.n.01" || examples[0] != "she pined away" || syn.Lemmas[0] != "pine" {
		t.Error("database state changed through a returned slice")
	}

	if _, ok := db.Synset("oak.n.01"); ok {
		t.Error("Synset reported an unknown id")
	}
}

func TestSensesOrderedByPartOfSpeech(t *testing.T) {
	db, err := NewDatabase([]Synset{
		{Name: "deposit.v.02", POS: Verb, Lemmas: []string{"deposit"}},
		{Name: "deep.s.01", POS: AdjectiveSat, Lemmas: []string{"deposit"}},
		{Name: "deposit.n.01", POS: Noun, Lemmas: []string{"deposit"}},
		{Name: "deposit.n.02", POS: Noun, Lemmas: []string{"deposit"}},
	})
	if err != nil {
		t.Fatalf("NewDatabase failed: %v", err)
	}

	got, _ := db.SensesFor("deposit")
	want := []SenseID{"deposit.n.01", "deposit.n.02", "deposit.v.02", "deep.s.01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SensesFor = %v, want %v", got, want)
	}
}

func TestMorphy(t *testing.T) {
	db, err := DefaultDatabase()
	if err != nil {
		t.Fatalf("Failed to load default database: %v", err)
	}
	bank, _ := db.SensesFor("bank")

	tests := []struct {
		word string
		want []SenseID
	}{
		{"banks", bank},
		{"banking", bank[10:]},
		{"banked", bank[10:]},
		{"pines", []SenseID{"pine.n.01", "pine.n.02", "yearn.v.01", "pine.v.02"}},
		{"deeper", []SenseID{"bass.s.01"}},
		{"cones", []SenseID{"cone.n.01", "cone.n.02", "strobile.n.01", "cone.n.04", "cone.v.01"}},
		{"s", nil},
		{"zebras", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := db.SensesFor(tt.word)
			if err != nil {
				t.Fatalf("SensesFor failed: %v", err)
			}
			if len(got) != len(tt.want) || (len(got) > 0 && !reflect.DeepEqual(got, tt.want)) {
				t.Errorf("SensesFor(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"lexicon.json", FormatJSON, false},
		{"dir/lexicon.yaml", FormatYAML, false},
		{"LEXICON.YML", FormatYAML, false},
		{"lexicon.csv", 0, true},
		{"lexicon", 0, true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("FormatFromPath(%q): err = %v, want ErrUnknownFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
		}
	}
}
