package block

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codeblock/buffer"
	"github.com/iw2rmb/codeblock/internal/grapheme"
)

const menuArrow = " ▾"

// View renders the mode selector, the open option list if any, and the
// text surface, wrapped in the host's shared styles.
func (m Model) View() string {
	if m.buf == nil {
		return ""
	}
	hs := m.host.Styles()

	rows := []string{m.renderSelector()}
	if m.menuOpen {
		rows = append(rows, m.renderMenu()...)
	}

	input := hs.Input
	if m.width > 0 {
		input = input.Width(max(m.width-input.GetHorizontalMargins()-input.GetHorizontalBorderSize(), 0))
	}
	rows = append(rows, input.Render(m.surfaceView()))

	return hs.Block.Render(strings.Join(rows, "\n"))
}

func (m Model) renderSelector() string {
	st := m.cfg.Style
	label := m.modeLabel(m.st.mode)
	switch {
	case m.readOnly:
		return st.Selector.Inherit(st.Disabled).Render(label)
	case m.menuOpen:
		return st.SelectorOpen.Render(label + menuArrow)
	default:
		return st.Selector.Render(label + menuArrow)
	}
}

func (m Model) renderMenu() []string {
	st := m.cfg.Style
	modes := m.res.Modes.Modes()
	width := 0
	for _, md := range modes {
		width = max(width, grapheme.Width(md.Label))
	}
	out := make([]string, 0, len(modes))
	for i, md := range modes {
		marker := "  "
		if md.Key == m.st.mode {
			marker = "✓ "
		}
		row := marker + grapheme.PadRight(md.Label, width)
		if i == m.menuIndex {
			out = append(out, st.OptionSelected.Render(row))
			continue
		}
		out = append(out, st.Option.Render(row))
	}
	return out
}

// modeLabel returns the registered label of key, or key itself.
func (m Model) modeLabel(key string) string {
	if label, ok := m.res.Modes.Label(key); ok {
		return label
	}
	return key
}

func (m Model) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-m.host.Styles().Input.GetHorizontalFrameSize(), 0)
}

func (m Model) surfaceView() string {
	if m.height <= 0 {
		content := m.renderSurface()
		if w := m.innerWidth(); w > 0 {
			lines := strings.Split(content, "\n")
			trunc := lipgloss.NewStyle().MaxWidth(w)
			for i, l := range lines {
				lines[i] = trunc.Render(l)
			}
			content = strings.Join(lines, "\n")
		}
		return content
	}
	vp := m.viewport
	vp.Width = m.innerWidth()
	vp.Height = m.height
	vp.SetContent(m.renderSurface())
	followRow(&vp, m.buf.Cursor().Row)
	return vp.View()
}

func (m Model) showCursor() bool {
	return m.focused && !m.readOnly && !m.menuOpen
}

func (m Model) textStyle() lipgloss.Style {
	if m.readOnly {
		return m.cfg.Style.Text.Inherit(m.cfg.Style.Disabled)
	}
	return m.cfg.Style.Text
}

// renderSurface renders every line of the text surface.
func (m Model) renderSurface() string {
	st := m.cfg.Style
	lineCount := m.buf.LineCount()

	if lineCount == 1 && m.buf.Line(0) == "" {
		return m.gutter(0, 1) + m.renderPlaceholder()
	}

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	base := m.textStyle()

	out := make([]string, 0, lineCount)
	for row := 0; row < lineCount; row++ {
		cursorCol := -1
		if m.showCursor() && row == cursor.Row {
			cursorCol = cursor.Col
		}
		selStart, selEnd := selectionCols(sel, selOK, row, len([]rune(m.buf.Line(row))))
		out = append(out, m.gutter(row, lineCount)+renderLine(
			st, base, m.buf.Line(row), m.cfg.TabWidth, cursorCol, selStart, selEnd,
		))
	}
	return strings.Join(out, "\n")
}

func (m Model) renderPlaceholder() string {
	st := m.cfg.Style
	text := m.Placeholder()
	if !m.showCursor() {
		return st.Placeholder.Render(text)
	}
	if text == "" {
		return st.Cursor.Render(" ")
	}
	clusters := grapheme.Split(text)
	return st.Cursor.Render(clusters[0]) + st.Placeholder.Render(strings.Join(clusters[1:], ""))
}

func (m Model) gutter(row, lineCount int) string {
	if !m.cfg.ShowLineNums {
		return ""
	}
	st := m.cfg.Style
	digits := len(fmt.Sprint(lineCount))
	num := st.LineNum
	if m.showCursor() && row == m.buf.Cursor().Row {
		num = st.LineNumActive
	}
	return num.Render(fmt.Sprintf("%*d", digits, row+1)) + st.Gutter.Render(" ")
}

// selectionCols returns the selected rune columns [start, end) of row, or
// (-1, -1) when nothing on row is selected.
func selectionCols(sel buffer.Range, ok bool, row, lineLen int) (int, int) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return -1, -1
	}
	start, end := 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	if start >= end {
		return -1, -1
	}
	return start, end
}

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelected
	cellCursor
)

func renderLine(st Style, base lipgloss.Style, line string, tabWidth, cursorCol, selStart, selEnd int) string {
	var sb strings.Builder
	var run strings.Builder
	kind := cellText

	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch kind {
		case cellSelected:
			sb.WriteString(st.Selection.Render(run.String()))
		case cellCursor:
			sb.WriteString(st.Cursor.Render(run.String()))
		default:
			sb.WriteString(base.Render(run.String()))
		}
		run.Reset()
	}

	cells := 0
	col := 0
	for _, r := range line {
		k := cellText
		switch {
		case col == cursorCol:
			k = cellCursor
		case col >= selStart && col < selEnd:
			k = cellSelected
		}
		if k != kind {
			flush()
			kind = k
		}
		text := string(r)
		if r == '\t' {
			text = strings.Repeat(" ", tabWidth-cells%tabWidth)
		}
		run.WriteString(text)
		cells += grapheme.Width(text)
		col++
	}
	flush()

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol == col {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}
