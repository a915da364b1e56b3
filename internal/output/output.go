package output

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/gubarz/snipmd/internal/parser"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
	Available() bool
}

// systemClipboard implements Clipboard with the platform clipboard tools
type systemClipboard struct{}

// Copy copies text to the system clipboard
func (systemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard tool was found
func (systemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// SystemClipboard returns the platform clipboard
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// ============================================================================
// Output Handling
// ============================================================================

// Mode represents how a picked snippet should be handled
type Mode string

const (
	ModePrint Mode = "print"
	ModeCopy  Mode = "copy"
)

// Output delivers a picked snippet to the user
type Output struct {
	w         io.Writer
	clipboard Clipboard
}

// New creates an output writing to w
func New(w io.Writer) *Output {
	return &Output{
		w:         w,
		clipboard: SystemClipboard(),
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (o *Output) WithClipboard(c Clipboard) *Output {
	o.clipboard = c
	return o
}

// Emit handles a snippet according to mode. rendered is what print mode
// writes; copy mode puts the raw snippet text on the clipboard.
func (o *Output) Emit(mode Mode, s parser.Snippet, rendered string) error {
	switch mode {
	case ModeCopy:
		if !o.clipboard.Available() {
			// No clipboard tool found, just print
			_, err := fmt.Fprintln(o.w, s.Text)
			return err
		}
		if err := o.clipboard.Copy(s.Text); err != nil {
			return fmt.Errorf("copy snippet: %w", err)
		}
		_, err := fmt.Fprintf(o.w, "Copied snippet from %s\n", s.File)
		return err
	default: // print
		_, err := fmt.Fprintln(o.w, rendered)
		return err
	}
}
