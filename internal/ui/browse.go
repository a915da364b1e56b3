package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/snipmd/internal/corpus"
	"github.com/gubarz/snipmd/internal/output"
	"github.com/gubarz/snipmd/internal/parser"
)

// ============================================================================
// Key Bindings
// ============================================================================

type keyMap struct {
	Next    key.Binding
	Context key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("n", " ", "enter"), key.WithHelp("n", "another")),
		Context: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "context")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) helpLine() string {
	bindings := []key.Binding{k.Next, k.Context, k.Copy, k.Quit}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Help().Key + " " + b.Help().Desc
	}
	return strings.Join(parts, " • ")
}

// ============================================================================
// Browse Model
// ============================================================================

// browseModel shows one random snippet at a time
type browseModel struct {
	corpus      parser.Corpus
	sampler     *corpus.Sampler
	clipboard   output.Clipboard
	keys        keyMap
	viewport    viewport.Model
	current     parser.Snippet
	showContext bool
	status      string
	ready       bool
	quitting    bool
}

func newBrowseModel(c parser.Corpus, sampler *corpus.Sampler, clip output.Clipboard, showContext bool) (browseModel, error) {
	m := browseModel{
		corpus:      c,
		sampler:     sampler,
		clipboard:   clip,
		keys:        defaultKeyMap(),
		showContext: showContext,
	}
	first, err := sampler.Pick(c)
	if err != nil {
		return m, err
	}
	m.current = first
	return m, nil
}

// Init implements tea.Model
func (m browseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-2, 3) // help + status lines
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if next, err := m.sampler.Pick(m.corpus); err == nil {
				m.current = next
			}
			m.status = ""
			m.refresh()
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Context):
			m.showContext = !m.showContext
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.status = m.copyCurrent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *browseModel) refresh() {
	if m.ready {
		m.viewport.SetContent(m.content())
	}
}

func (m browseModel) content() string {
	return Render(m.current, m.showContext)
}

func (m browseModel) copyCurrent() string {
	if m.clipboard == nil || !m.clipboard.Available() {
		return "clipboard unavailable"
	}
	if err := m.clipboard.Copy(m.current.Text); err != nil {
		return "copy failed: " + err.Error()
	}
	return "copied"
}

// View implements tea.Model
func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	body := m.content()
	if m.ready {
		body = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		styles.Status.Render(m.status),
		styles.Help.Render(m.keys.helpLine()),
	)
}

// ============================================================================
// Run TUI
// ============================================================================

// getTTY returns file handles for TUI input/output
// Uses /dev/tty to bypass shell pipes and command substitution
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()

	if fileInfo, err := os.Stdout.Stat(); err != nil || (fileInfo.Mode()&os.ModeCharDevice) == 0 {
		out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			out = os.Stderr
		} else {
			closers = append(closers, func() { out.Close() })
		}

		in, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
		if err != nil {
			in = os.Stdin
		} else {
			closers = append(closers, func() { in.Close() })
		}

		// Tell lipgloss to use the TTY for color detection
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

		return in, out, func() {
			for _, c := range closers {
				c()
			}
		}
	}

	return os.Stdin, os.Stdout, func() {}
}

// RunBrowse launches the interactive snippet browser
func RunBrowse(c parser.Corpus, clip output.Clipboard, showContext bool) error {
	m, err := newBrowseModel(c, corpus.NewSampler(nil), clip, showContext)
	if err != nil {
		return err
	}

	ttyIn, ttyOut, cleanup := getTTY()
	defer cleanup()
	RefreshStyles() // Refresh after getTTY sets up the renderer

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(ttyOut), tea.WithInput(ttyIn))
	_, err = p.Run()
	return err
}
