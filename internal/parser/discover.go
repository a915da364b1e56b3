package parser

import (
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// MarkdownFiles yields every markdown file under root in lexical walk order.
// Each range over the sequence walks the tree again. A walk error is yielded
// once and ends the sequence.
func MarkdownFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isMarkdown(path) {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", fmt.Errorf("scan %s: %w", root, err))
		}
	}
}

func isMarkdown(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".md")
}
