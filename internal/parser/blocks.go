package parser

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Kind identifies the variant of a top-level block
type Kind int

const (
	KindBlank Kind = iota
	KindHeading
	KindParagraph
	KindCode
	KindList
	KindQuote
	KindOther // thematic breaks, HTML blocks, tables
)

var kindNames = map[Kind]string{
	KindBlank:     "blank",
	KindHeading:   "heading",
	KindParagraph: "paragraph",
	KindCode:      "code",
	KindList:      "list",
	KindQuote:     "quote",
	KindOther:     "other",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Block is one top-level element of a note
type Block struct {
	Kind    Kind
	Level   int      // Heading level (1-6)
	Text    string   // Flattened text; unused for lists and blanks
	Items   []string // Flattened list items
	Ordered bool     // Ordered list
	Start   int      // Number of the first ordered item
}

// PlainText returns the text a block contributes as a snippet or as context
func (b Block) PlainText() string {
	switch b.Kind {
	case KindBlank:
		return ""
	case KindList:
		return b.ListText()
	case KindHeading, KindParagraph, KindCode, KindQuote, KindOther:
		return b.Text
	}
	return ""
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// ParseBlocks parses a note into its top-level blocks. A run of blank lines
// before a block becomes a single KindBlank separator. Invalid UTF-8 is
// replaced with U+FFFD so block text survives a JSON round trip unchanged.
func ParseBlocks(source []byte) []Block {
	source = stripFrontMatter(bytes.ToValidUTF8(source, []byte("\uFFFD")))
	doc := markdown.Parser().Parse(text.NewReader(source))

	var blocks []Block
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		// goldmark also flags the first block of a document
		if n.PreviousSibling() != nil && n.HasBlankPreviousLines() {
			blocks = append(blocks, Block{Kind: KindBlank})
		}
		blocks = append(blocks, newBlock(n, source))
	}
	return blocks
}

func newBlock(n ast.Node, source []byte) Block {
	switch node := n.(type) {
	case *ast.Heading:
		return Block{Kind: KindHeading, Level: node.Level, Text: strings.TrimSpace(NodeText(node, source))}
	case *ast.Paragraph, *ast.TextBlock:
		return Block{Kind: KindParagraph, Text: strings.TrimSpace(NodeText(n, source))}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return Block{Kind: KindCode, Text: strings.TrimRight(NodeText(n, source), "\n")}
	case *ast.List:
		return newListBlock(node, source)
	case *ast.Blockquote:
		return Block{Kind: KindQuote, Text: strings.TrimSpace(NodeText(n, source))}
	default:
		return Block{Kind: KindOther, Text: strings.TrimRight(NodeText(n, source), "\n")}
	}
}

// stripFrontMatter drops a leading YAML or TOML header. Notes whose header
// does not decode are parsed as-is.
func stripFrontMatter(source []byte) []byte {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return source
	}
	return body
}
