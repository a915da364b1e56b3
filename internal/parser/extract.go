package parser

import "strings"

// ExtractSnippets walks a note's blocks and returns one snippet per block
// with non-blank text, tagged with its heading path and neighbors.
func ExtractSnippets(blocks []Block, file string) []Snippet {
	var snippets []Snippet
	var headers []string

	for i, block := range blocks {
		switch block.Kind {
		case KindHeading:
			headers = pushHeading(headers, block.Level, block.Text)
			continue
		case KindBlank, KindOther:
			continue
		case KindParagraph, KindCode, KindList, KindQuote:
		}

		text := block.PlainText()
		if strings.TrimSpace(text) == "" {
			continue
		}

		snippets = append(snippets, Snippet{
			Text:     text,
			Header:   append(make([]string, 0, len(headers)), headers...),
			File:     file,
			PrevText: previousText(blocks, i),
			NextText: nextText(blocks, i),
		})
	}
	return snippets
}

// pushHeading keeps the headings above level and appends text
func pushHeading(stack []string, level int, text string) []string {
	keep := min(max(level-1, 0), len(stack))
	return append(stack[:keep:keep], text)
}

func previousText(blocks []Block, i int) string {
	for j := i - 1; j >= 0; j-- {
		if blocks[j].Kind == KindBlank {
			continue
		}
		return contextText(blocks[j])
	}
	return ""
}

func nextText(blocks []Block, i int) string {
	for j := i + 1; j < len(blocks); j++ {
		if blocks[j].Kind == KindBlank {
			continue
		}
		return contextText(blocks[j])
	}
	return ""
}

// contextText suppresses headings; they are already part of the path
func contextText(b Block) string {
	if b.Kind == KindHeading {
		return ""
	}
	return b.PlainText()
}
