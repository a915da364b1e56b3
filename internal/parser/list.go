package parser

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

func newListBlock(list *ast.List, source []byte) Block {
	block := Block{
		Kind:    KindList,
		Ordered: list.IsOrdered(),
		Start:   list.Start,
		Items:   make([]string, 0, list.ChildCount()),
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		block.Items = append(block.Items, strings.TrimSpace(NodeText(item, source)))
	}
	return block
}

// ListText renders a list one item per line. Ordered items are numbered from
// the list's start number, unordered items get a "- " marker. Nested lists
// stay inline in their parent item's text.
func (b Block) ListText() string {
	lines := make([]string, len(b.Items))
	for i, item := range b.Items {
		if b.Ordered {
			lines[i] = strconv.Itoa(b.Start+i) + ". " + item
		} else {
			lines[i] = "- " + item
		}
	}
	return strings.Join(lines, "\n")
}
