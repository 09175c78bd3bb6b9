// Package config resolves the lesk command's settings from the environment
// (optionally a .env file) and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/tsawler/lesk"
)

const (
	DefaultWord     = "bank"
	DefaultSentence = "The bank can guarantee deposits will eventually cover future tuition costs " +
		"because it invests in adjustable-rate mortgage securities."
)

// Config holds the settings of one run.
type Config struct {
	Word     string
	Sentence string
	Lexicon  string // Path to a JSON or YAML lexicon; empty selects the embedded one.
	POS      lesk.PartOfSpeech
	Debug    bool

	// EnvFileLoaded records whether a .env file was found.
	EnvFileLoaded bool
}

// Load builds a Config. Environment variables (LESK_WORD, LESK_SENTENCE,
// LESK_LEXICON, LESK_POS, LESK_DEBUG) override the defaults and flags
// override the environment. Usage errors are written to output.
func Load(name string, args []string, output io.Writer) (*Config, error) {
	cfg := &Config{
		EnvFileLoaded: godotenv.Load() == nil,
	}

	cfg.Word = GetEnvString("LESK_WORD", DefaultWord)
	cfg.Sentence = GetEnvString("LESK_SENTENCE", DefaultSentence)
	cfg.Lexicon = GetEnvString("LESK_LEXICON", "")
	cfg.Debug = GetEnvBool("LESK_DEBUG", false)
	pos := GetEnvString("LESK_POS", "")

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Word, "word", cfg.Word, "word to disambiguate")
	fs.StringVar(&cfg.Sentence, "sentence", cfg.Sentence, "sentence containing the word")
	fs.StringVar(&cfg.Lexicon, "lexicon", cfg.Lexicon, "JSON or YAML lexicon file (default: embedded WordNet excerpt)")
	fs.StringVar(&pos, "pos", pos, "restrict senses to a part of speech: n, v, a, s or r")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.POS = lesk.PartOfSpeech(pos)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Word == "" {
		return errors.New("word must not be empty")
	}
	if c.POS != lesk.AnyPartOfSpeech && !c.POS.Valid() {
		return fmt.Errorf("invalid part of speech %q", c.POS)
	}
	return nil
}

// GetEnvString returns the value of key, or defaultValue when it is unset.
func GetEnvString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

// GetEnvBool parses key as a boolean, falling back to defaultValue when it is
// unset or malformed.
func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
