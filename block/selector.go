package block

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openMenu() {
	m.menuOpen = true
	m.menuIndex = max(m.res.Modes.Index(m.st.mode), 0)
}

// handleMenuKey drives the open option list. Every key is consumed while
// the list is open.
func (m Model) handleMenuKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	n := m.res.Modes.Len()
	switch {
	case key.Matches(msg, km.MenuUp):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case key.Matches(msg, km.MenuDown):
		if m.menuIndex < n-1 {
			m.menuIndex++
		}
	case key.Matches(msg, km.MenuPick):
		m.menuOpen = false
		m.SetMode(m.res.Modes.At(m.menuIndex).Key)
	case key.Matches(msg, km.MenuClose):
		m.menuOpen = false
	}
	return m
}
