package ui

import (
	"strings"

	"github.com/gubarz/snipmd/internal/parser"
)

const (
	title        = "💡 Snippet of the Day"
	headerSep    = " › "
	contextLines = 3
)

// NoSnippetsMessage is shown when a scan finds nothing worth quoting
const NoSnippetsMessage = "⚠️ No suitable snippets found."

// Render draws a snippet inside a framed box. With showContext the
// neighboring paragraphs are shown dimmed above and below the text.
func Render(s parser.Snippet, showContext bool) string {
	return styles.Border.Render(renderBody(s, showContext))
}

func renderBody(s parser.Snippet, showContext bool) string {
	var sections []string

	sections = append(sections, styles.Title.Render(title))
	if path := HeadingPath(s); path != "" {
		sections = append(sections, styles.Header.Render(path))
	}

	var body []string
	if showContext && s.PrevText != "" {
		body = append(body, styles.Context.Render("… "+truncateLines(s.PrevText, contextLines)))
	}
	body = append(body, styles.Text.Render(s.Text))
	if showContext && s.NextText != "" {
		body = append(body, styles.Context.Render(truncateLines(s.NextText, contextLines)+" …"))
	}

	sections = append(sections, "", strings.Join(body, "\n\n"), "")
	sections = append(sections, styles.Path.Render(s.File))
	return strings.Join(sections, "\n")
}

// HeadingPath joins a snippet's headings outermost first
func HeadingPath(s parser.Snippet) string {
	return strings.Join(s.Header, headerSep)
}

// truncateLines keeps the first maxLines lines of text
func truncateLines(text string, maxLines int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	return strings.Join(lines[:maxLines], "\n") + "\n…"
}
