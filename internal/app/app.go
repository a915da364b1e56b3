// Package app exposes the two snipmd operations: building a corpus from a
// notes tree and picking one snippet from a saved corpus.
package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/gubarz/snipmd/internal/corpus"
	"github.com/gubarz/snipmd/internal/parser"
)

// Generate scans notes (a directory or a single file) and replaces the corpus
// at corpusPath. When nothing qualifies it returns parser.ErrNoSnippets and
// leaves any existing corpus untouched.
func Generate(notes, corpusPath string, log zerolog.Logger) (parser.Corpus, error) {
	info, err := os.Stat(notes)
	if err != nil {
		return nil, fmt.Errorf("notes path: %w", err)
	}

	p := parser.NewParser().WithLogger(log)
	var c parser.Corpus
	if info.IsDir() {
		c, err = p.ParseDirectory(notes)
	} else {
		c, err = p.ParseSingleFile(notes)
	}
	if err != nil {
		return nil, err
	}

	if err := corpus.NewStore(corpusPath).Save(c); err != nil {
		return nil, fmt.Errorf("save corpus: %w", err)
	}
	log.Info().Str("corpus", corpusPath).Int("snippets", len(c)).Msg("corpus written")
	return c, nil
}

// Load reads the whole corpus at corpusPath
func Load(corpusPath string) (parser.Corpus, error) {
	c, err := corpus.NewStore(corpusPath).Load()
	if err != nil {
		return nil, err
	}
	if len(c) == 0 {
		return nil, corpus.ErrEmptyCorpus
	}
	return c, nil
}

// Pick loads the corpus and returns one snippet chosen uniformly at random
func Pick(corpusPath string) (parser.Snippet, error) {
	c, err := Load(corpusPath)
	if err != nil {
		return parser.Snippet{}, err
	}
	return corpus.Pick(c)
}
