package block

import "github.com/charmbracelet/lipgloss"

// ToolName is the name a block registers under.
const ToolName = "code"

// Host is the editor runtime around a block.
type Host interface {
	// Translate returns the localized form of a UI string.
	Translate(s string) string
	// Styles returns the styles shared by every block of the editor.
	Styles() HostStyles
}

// HostStyles are the shared styles a host applies to all of its blocks.
type HostStyles struct {
	Block lipgloss.Style
	Input lipgloss.Style
}

// DefaultHostStyles draws the text surface in a rounded border.
func DefaultHostStyles() HostStyles {
	return HostStyles{
		Block: lipgloss.NewStyle(),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
	}
}

type plainHost struct{}

func (plainHost) Translate(s string) string { return s }
func (plainHost) Styles() HostStyles       { return DefaultHostStyles() }

// Toolbox is the entry a host shows in its block picker.
type Toolbox struct {
	Icon  string
	Title string
}

// Capabilities is what a block declares to its host.
type Capabilities struct {
	// ReadOnly reports that the block renders in read-only mode.
	ReadOnly bool
	// LineBreaks reports that Enter is consumed by the block and must not
	// split it into a new block.
	LineBreaks bool
	// PasteTags are the element names Paste accepts.
	PasteTags []string
	// Sanitize lists fields whose raw markup the host must keep unescaped.
	Sanitize map[string]bool
}

func DefaultToolbox() Toolbox {
	return Toolbox{Icon: "</>", Title: "Code"}
}

func DefaultCapabilities() Capabilities {
	return Capabilities{
		ReadOnly:   true,
		LineBreaks: true,
		PasteTags:  []string{"pre"},
		Sanitize:   map[string]bool{"code": true},
	}
}

// ToolRegistry is implemented by hosts that keep a block picker.
type ToolRegistry interface {
	RegisterTool(name string, tb Toolbox, caps Capabilities)
}

// Register announces the code block to r.
func Register(r ToolRegistry) {
	r.RegisterTool(ToolName, DefaultToolbox(), DefaultCapabilities())
}
