package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/snipmd/internal/config"
)

// StyleManager encapsulates all snippet styles
type StyleManager struct {
	Title   lipgloss.Style
	Text    lipgloss.Style
	Header  lipgloss.Style
	Path    lipgloss.Style
	Context lipgloss.Style
	Help    lipgloss.Style
	Status  lipgloss.Style

	// Chrome styles
	Border  lipgloss.Style
	Divider lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:   lipgloss.NewStyle().Bold(true),
		Text:    lipgloss.NewStyle(),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Context: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	textColor := parseANSIColor(config.GetColorText())
	headerColor := parseANSIColor(config.GetColorHeader())
	pathColor := parseANSIColor(config.GetColorPath())
	contextColor := parseANSIColor(config.GetColorContext())
	borderColor := lipgloss.Color(config.GetColorBorder())

	s.Text = lipgloss.NewStyle().Foreground(textColor)
	s.Header = lipgloss.NewStyle().Foreground(headerColor)
	s.Path = lipgloss.NewStyle().Foreground(pathColor)
	s.Context = lipgloss.NewStyle().Foreground(contextColor).Italic(true)

	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
	s.Divider = lipgloss.NewStyle().Foreground(borderColor)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
