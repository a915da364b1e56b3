package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Snippet represents a single quotable block taken from a note
type Snippet struct {
	Text     string     // Flattened block text
	Header   []string   // Heading path, outermost first
	File     string     // Source filename without directory
	PrevText string     // Nearest non-blank block before this one
	NextText string     // Nearest non-blank block after this one
	LastSeen *time.Time // Reserved; nothing sets it yet
}

// Corpus holds every snippet found in one scan
type Corpus []Snippet

// ErrNoSnippets is returned when a scan finds no qualifying block
var ErrNoSnippets = errors.New("no suitable snippets found")

// Parser handles markdown file parsing
type Parser struct {
	corpus Corpus
	files  int
	log    zerolog.Logger
}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{
		corpus: make(Corpus, 0),
		log:    zerolog.Nop(),
	}
}

// WithLogger sets the logger used to report scan progress
func (p *Parser) WithLogger(log zerolog.Logger) *Parser {
	p.log = log
	return p
}

// ParseDirectory recursively parses all markdown files
func (p *Parser) ParseDirectory(dir string) (Corpus, error) {
	for path, err := range MarkdownFiles(dir) {
		if err != nil {
			return nil, err
		}
		if err := p.parseFile(path); err != nil {
			return nil, err
		}
	}
	return p.result()
}

// ParseSingleFile parses a single markdown file
func (p *Parser) ParseSingleFile(path string) (Corpus, error) {
	if err := p.parseFile(path); err != nil {
		return nil, err
	}
	return p.result()
}

func (p *Parser) parseFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read note: %w", err)
	}

	snippets := ExtractSnippets(ParseBlocks(source), strings.ToValidUTF8(filepath.Base(path), "\uFFFD"))
	p.log.Debug().Str("file", path).Int("snippets", len(snippets)).Msg("parsed note")

	p.corpus = append(p.corpus, snippets...)
	p.files++
	return nil
}

func (p *Parser) result() (Corpus, error) {
	p.log.Info().Int("files", p.files).Int("snippets", len(p.corpus)).Msg("scan complete")
	if len(p.corpus) == 0 {
		return nil, ErrNoSnippets
	}
	return p.corpus, nil
}
