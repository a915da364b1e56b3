package app

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gubarz/snipmd/internal/corpus"
	"github.com/gubarz/snipmd/internal/parser"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateAndPick(t *testing.T) {
	notes := t.TempDir()
	writeFile(t, filepath.Join(notes, "day.md"), "# Title\n\nSome para.\n\n- a\n- b\n")
	corpusPath := filepath.Join(t.TempDir(), "data", "snippets.json")

	c, err := Generate(notes, corpusPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(c) != 2 {
		t.Fatalf("expected 2 snippets, got %d", len(c))
	}

	s, err := Pick(corpusPath)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if s.File != "day.md" || len(s.Header) != 1 || s.Header[0] != "Title" {
		t.Errorf("unexpected snippet %+v", s)
	}
	if s.Text != "Some para." && s.Text != "- a\n- b" {
		t.Errorf("picked unknown text %q", s.Text)
	}
}

func TestGenerateSingleFile(t *testing.T) {
	note := filepath.Join(t.TempDir(), "one.md")
	writeFile(t, note, "Only paragraph.\n")
	corpusPath := filepath.Join(t.TempDir(), "snippets.json")

	c, err := Generate(note, corpusPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(c) != 1 || c[0].Text != "Only paragraph." {
		t.Errorf("unexpected corpus %+v", c)
	}
}

func TestGenerateInvalidUTF8RoundTrips(t *testing.T) {
	notes := t.TempDir()
	writeFile(t, filepath.Join(notes, "latin1.md"), "# Caf\xe9\n\ncaf\xe9 latin1\n")
	corpusPath := filepath.Join(t.TempDir(), "snippets.json")

	c, err := Generate(notes, corpusPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	loaded, err := Load(corpusPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded, c) {
		t.Errorf("saved corpus differs from generated one:\n got %+v\nwant %+v", loaded, c)
	}
}

func TestGenerateNoSnippetsKeepsCorpus(t *testing.T) {
	notes := t.TempDir()
	writeFile(t, filepath.Join(notes, "a.md"), "# Heading only\n")
	writeFile(t, filepath.Join(notes, "b.md"), "")
	corpusPath := filepath.Join(t.TempDir(), "snippets.json")

	if _, err := Generate(notes, corpusPath, zerolog.Nop()); !errors.Is(err, parser.ErrNoSnippets) {
		t.Fatalf("expected ErrNoSnippets, got %v", err)
	}
	if _, err := os.Stat(corpusPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no corpus file, stat returned %v", err)
	}

	existing := parser.Corpus{{Text: "keep me", Header: []string{}, File: "old.md"}}
	if err := corpus.NewStore(corpusPath).Save(existing); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(notes, corpusPath, zerolog.Nop()); !errors.Is(err, parser.ErrNoSnippets) {
		t.Fatalf("expected ErrNoSnippets, got %v", err)
	}
	s, err := Pick(corpusPath)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if s.Text != "keep me" {
		t.Errorf("existing corpus was overwritten: %+v", s)
	}
}

func TestGenerateMissingNotes(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "c.json"), zerolog.Nop())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestPickErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Pick(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	empty := filepath.Join(dir, "empty.json")
	writeFile(t, empty, "[]\n")
	if _, err := Pick(empty); !errors.Is(err, corpus.ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	writeFile(t, corrupt, "not json")
	if _, err := Pick(corrupt); err == nil {
		t.Error("expected decode error")
	}
}
