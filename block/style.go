package block

import "github.com/charmbracelet/lipgloss"

// Style controls how a block renders. Host shared styles wrap these.
type Style struct {
	Selector       lipgloss.Style
	SelectorOpen   lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style

	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Disabled    lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Selector:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		SelectorOpen:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Option:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		OptionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),

		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),

		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Disabled:    lipgloss.NewStyle().Faint(true),
	}
}
