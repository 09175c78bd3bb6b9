// Command lesk prints the Simplified Lesk overlap of every sense of a word in
// a sentence, followed by the chosen sense.
package main

import (
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tsawler/lesk"
	"github.com/tsawler/lesk/internal/config"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Error("Invalid configuration", "err", err)
		os.Exit(2)
	}

	logger := newLogger(cfg.Debug)
	if !cfg.EnvFileLoaded {
		logger.Debug("No .env file found, using system environment variables")
	}

	db, err := openLexicon(cfg.Lexicon)
	if err != nil {
		logger.Fatal("Could not load lexicon", "path", cfg.Lexicon, "err", err)
	}
	logger.Debug("Lexicon loaded", "synsets", db.Len())

	var opts []lesk.Option
	if cfg.POS != lesk.AnyPartOfSpeech {
		opts = append(opts, lesk.WithPartOfSpeech(cfg.POS))
	}

	start := time.Now()
	result, err := lesk.NewDisambiguator(db, opts...).Disambiguate(cfg.Word, cfg.Sentence)
	if err != nil {
		logger.Fatal("Disambiguation failed", "word", cfg.Word, "err", err)
	}

	logger.Debug("Context tokenized", "tokens", len(result.Context))
	for _, s := range result.Scores {
		logger.Debug("Scored sense",
			"sense", s.Sense,
			"overlap", s.Overlap.Count,
			"function_words", strings.Join(s.FunctionWords, " "),
		)
	}
	logger.Debug("Disambiguation finished", "best", result.Best, "took", time.Since(start))

	if _, err := result.WriteTo(os.Stdout); err != nil {
		logger.Fatal("Could not write report", "err", err)
	}
}

func newLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

func openLexicon(path string) (*lesk.Database, error) {
	if path == "" {
		return lesk.DefaultDatabase()
	}
	return lesk.DatabaseFromFile(path)
}
