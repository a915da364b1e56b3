package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gubarz/snipmd/internal/parser"
)

// snippetType tags snippet records in the corpus file
const snippetType = "Snippet"

var (
	// ErrEmptyCorpus is returned when there is nothing to save or sample
	ErrEmptyCorpus = errors.New("corpus is empty")
	// ErrUnknownRecord is returned for records without the snippet tag
	ErrUnknownRecord = errors.New("unknown corpus record")
)

// record is the on-disk shape of one snippet. Keys are part of the file
// format and must not change.
type record struct {
	Type     string     `json:"__type__"`
	Text     string     `json:"text"`
	Header   []string   `json:"header"`
	File     string     `json:"file"`
	Previous string     `json:"previous paragraph"`
	Next     string     `json:"next paragraph"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}

func toRecord(s parser.Snippet) record {
	header := s.Header
	if header == nil {
		header = []string{}
	}
	return record{
		Type:     snippetType,
		Text:     s.Text,
		Header:   header,
		File:     s.File,
		Previous: s.PrevText,
		Next:     s.NextText,
		LastSeen: s.LastSeen,
	}
}

func (r record) snippet() parser.Snippet {
	header := r.Header
	if header == nil {
		header = []string{}
	}
	return parser.Snippet{
		Text:     r.Text,
		Header:   header,
		File:     r.File,
		PrevText: r.Previous,
		NextText: r.Next,
		LastSeen: r.LastSeen,
	}
}

// Encode writes the corpus as an indented JSON array
func Encode(w io.Writer, c parser.Corpus) error {
	records := make([]record, len(c))
	for i, s := range c {
		records[i] = toRecord(s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// Decode reads a corpus written by Encode
func Decode(r io.Reader) (parser.Corpus, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}

	c := make(parser.Corpus, 0, len(records))
	for i, rec := range records {
		if rec.Type != snippetType {
			return nil, fmt.Errorf("record %d has type %q: %w", i, rec.Type, ErrUnknownRecord)
		}
		c = append(c, rec.snippet())
	}
	return c, nil
}

// Store persists a corpus to a single file
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the corpus file location
func (s *Store) Path() string {
	return s.path
}

// Save replaces the corpus file. The new content is written to a temporary
// file next to the target and renamed into place, so readers see either the
// old corpus or the complete new one.
func (s *Store) Save(c parser.Corpus) (err error) {
	if len(c) == 0 {
		return ErrEmptyCorpus
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create corpus directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp corpus: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, c); err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod corpus: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync corpus: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close corpus: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace corpus: %w", err)
	}
	return nil
}

// Load reads the whole corpus back into memory
func (s *Store) Load() (parser.Corpus, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode corpus %s: %w", s.path, err)
	}
	return c, nil
}
