package block

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codeblock/mode"
)

type testHost struct {
	tr map[string]string
}

func (h testHost) Translate(s string) string {
	if t, ok := h.tr[s]; ok {
		return t
	}
	return s
}

func (testHost) Styles() HostStyles { return HostStyles{} }

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

var jsGo = []mode.Mode{{Key: "js", Label: "JavaScript"}, {Key: "go", Label: "Go"}}

func newTestModel(d Data, cfg Config) Model {
	return New(Params{Data: d, Config: cfg, Host: testHost{}})
}

func press(m Model, msgs ...tea.KeyMsg) (Model, bool) {
	consumed := false
	for _, msg := range msgs {
		m, consumed = m.HandleKey(msg)
	}
	return m, consumed
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// viewLines splits a rendered view and drops the right padding lipgloss
// adds to align lines.
func viewLines(v string) []string {
	lines := strings.Split(v, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
