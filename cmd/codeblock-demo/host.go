package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codeblock/block"
)

// demoHost is the editor runtime shared by every block of the demo.
type demoHost struct {
	tools map[string]block.Capabilities
	names []string
	boxes map[string]block.Toolbox
}

func newDemoHost() *demoHost {
	return &demoHost{
		tools: map[string]block.Capabilities{},
		boxes: map[string]block.Toolbox{},
	}
}

func (h *demoHost) RegisterTool(name string, tb block.Toolbox, caps block.Capabilities) {
	if _, ok := h.tools[name]; !ok {
		h.names = append(h.names, name)
	}
	h.tools[name] = caps
	h.boxes[name] = tb
}

func (h *demoHost) Translate(s string) string { return s }

func (h *demoHost) Styles() block.HostStyles {
	hs := block.DefaultHostStyles()
	hs.Block = lipgloss.NewStyle().MarginBottom(1)
	return hs
}
