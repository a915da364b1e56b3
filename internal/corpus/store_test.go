package corpus

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gubarz/snipmd/internal/parser"
)

func sampleCorpus() parser.Corpus {
	seen := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	return parser.Corpus{
		{
			Text:     "Some para.",
			Header:   []string{"Title"},
			File:     "day.md",
			NextText: "- a\n- b",
		},
		{
			Text:     "- a\n- b",
			Header:   []string{"Title"},
			File:     "day.md",
			PrevText: "Some para.",
		},
		{
			Text:   "Ünïcödé — 日本語 and <tags> & \"quotes\"",
			Header: []string{},
			File:   "intl.md",
		},
		{
			Text:     "1. First\n2. Second",
			Header:   []string{"A", "B", "C"},
			File:     "deep.md",
			PrevText: "before",
			NextText: "after",
			LastSeen: &seen,
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := sampleCorpus()

	var buf bytes.Buffer
	if err := Encode(&buf, original); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("expected %d snippets, got %d", len(original), len(decoded))
	}
	for i := range original {
		want, got := original[i], decoded[i]
		wantSeen, gotSeen := want.LastSeen, got.LastSeen
		want.LastSeen, got.LastSeen = nil, nil
		if !reflect.DeepEqual(want, got) {
			t.Errorf("snippet %d: expected %+v, got %+v", i, want, got)
		}
		if (wantSeen == nil) != (gotSeen == nil) || (wantSeen != nil && !wantSeen.Equal(*gotSeen)) {
			t.Errorf("snippet %d: expected last seen %v, got %v", i, wantSeen, gotSeen)
		}
	}
}

func TestEncodeFormat(t *testing.T) {
	var buf bytes.Buffer
	c := parser.Corpus{{Text: "hello", File: "a.md"}}
	if err := Encode(&buf, c); err != nil {
		t.Fatalf("encode: %v", err)
	}

	expected := `[
  {
    "__type__": "Snippet",
    "text": "hello",
    "header": [],
    "file": "a.md",
    "previous paragraph": "",
    "next paragraph": ""
  }
]
`
	if buf.String() != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, buf.String())
	}
}

func TestDecodeRejectsUnknownRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "missing tag",
			input: `[{"text": "x", "header": [], "file": "a.md"}]`,
			want:  ErrUnknownRecord,
		},
		{
			name:  "other tag",
			input: `[{"__type__": "Note", "text": "x"}]`,
			want:  ErrUnknownRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, input := range []string{"", "{", `{"__type__": "Snippet"}`, `["text"]`} {
		if _, err := Decode(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snippets.json")
	store := NewStore(path)

	if err := store.Save(sampleCorpus()[:3]); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded, sampleCorpus()[:3]) {
		t.Errorf("loaded corpus differs: %+v", loaded)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the corpus file, found %d entries", len(entries))
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "snippets.json"))
	if err := store.Save(sampleCorpus()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(sampleCorpus()[:1]); err != nil {
		t.Fatalf("second save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("expected corpus to be replaced wholesale, got %d snippets", len(loaded))
	}
}

func TestStoreSaveEmptyKeepsExisting(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "snippets.json"))
	if err := store.Save(sampleCorpus()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != len(sampleCorpus()) {
		t.Errorf("expected previous corpus intact, got %d snippets", len(loaded))
	}
}

func TestStoreLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewStore(filepath.Join(dir, "missing.json")).Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("[{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(corrupt).Load(); err == nil {
		t.Error("expected decode error for corrupt corpus")
	}
}
