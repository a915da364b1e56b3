package parser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"
)

// NodeText flattens a node into plain text by concatenating the text of its
// descendants. Text and code span leaves contribute their literal content.
func NodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	writeNodeText(&b, n, source)
	return b.String()
}

func writeNodeText(b *strings.Builder, n ast.Node, source []byte) {
	switch node := n.(type) {
	case *ast.Text:
		value := node.Segment.Value(source)
		if !node.IsRaw() {
			value = util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(value)))
		}
		b.Write(value)
		if node.SoftLineBreak() || node.HardLineBreak() {
			b.WriteByte('\n')
		}
		return
	case *ast.String:
		b.Write(node.Value)
		return
	case *ast.AutoLink:
		b.Write(node.Label(source))
		return
	case *ast.RawHTML:
		for i := 0; i < node.Segments.Len(); i++ {
			segment := node.Segments.At(i)
			b.Write(segment.Value(source))
		}
		return
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		writeLines(b, n, source)
		return
	case *ast.HTMLBlock:
		writeLines(b, n, source)
		if node.HasClosure() {
			b.Write(node.ClosureLine.Value(source))
		}
		return
	case *east.TableHeader, *east.TableRow:
		writeTableRow(b, n, source)
		return
	}

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		// Sibling blocks inside a container each start on their own line
		if child.Type() == ast.TypeBlock && child.PreviousSibling() != nil {
			b.WriteByte('\n')
		}
		writeNodeText(b, child, source)
	}
}

func writeLines(b *strings.Builder, n ast.Node, source []byte) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		if line.Padding > 0 {
			b.WriteString(strings.Repeat(" ", line.Padding))
		}
		b.Write(line.Value(source))
	}
}

func writeTableRow(b *strings.Builder, row ast.Node, source []byte) {
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if cell.PreviousSibling() != nil {
			b.WriteString(" | ")
		}
		b.WriteString(strings.TrimSpace(NodeText(cell, source)))
	}
}
