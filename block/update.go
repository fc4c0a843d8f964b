package block

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codeblock/buffer"
	"github.com/iw2rmb/codeblock/indent"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, m.height), nil
	case tea.KeyMsg:
		m, _ = m.HandleKey(msg)
		return m, nil
	case tea.MouseMsg:
		if m.height <= 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.rebuildContent()
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// HandleKey applies msg and reports whether the block consumed it. A
// consumed key must not be handled again by the host; this is how tab
// indentation and Enter stay inside the block. Unfocused and read-only
// blocks consume nothing.
func (m Model) HandleKey(msg tea.KeyMsg) (Model, bool) {
	if !m.focused || m.readOnly || m.buf == nil {
		return m, false
	}
	if m.menuOpen {
		return m.handleMenuKey(msg), true
	}
	consumed := m.handleEditKey(msg)
	if consumed {
		m.notify()
		m.rebuildContent()
		m.followCursor()
	}
	return m, consumed
}

func (m *Model) handleEditKey(msg tea.KeyMsg) bool {
	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.insertPasted(string(msg.Runes))
		return true
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Indent):
		m.applyIndent(false)
	case key.Matches(msg, km.Outdent):
		m.applyIndent(true)
	case key.Matches(msg, km.ModeMenu):
		m.openMenu()

	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()

	case key.Matches(msg, km.Undo):
		_ = m.buf.Undo()
	case key.Matches(msg, km.Redo):
		_ = m.buf.Redo()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.buf.InsertText(string(msg.Runes))
			return true
		}
		if msg.Type == tea.KeySpace {
			m.buf.InsertRune(' ')
			return true
		}
		return false
	}
	return true
}

// applyIndent applies one indentation step at the caret. The caret is the
// selection start when a selection is active.
func (m *Model) applyIndent(outdent bool) {
	caretPos := m.buf.Cursor()
	if r, ok := m.buf.Selection(); ok {
		caretPos = r.Start
	}
	res := indent.Apply(m.buf.Text(), m.buf.ByteOffset(caretPos), outdent)
	if !res.Changed {
		return
	}
	start, _ := m.buf.PosFromByteOffset(res.Edit.Start)
	end, _ := m.buf.PosFromByteOffset(res.Edit.End)
	m.buf.Apply(buffer.TextEdit{Range: buffer.Range{Start: start, End: end}, Text: res.Edit.Insert})
	caret, _ := m.buf.PosFromByteOffset(res.Caret)
	m.buf.SetCursor(caret)
}

func (m *Model) insertPasted(s string) {
	if ev, ok := ParsePaste(s); ok && m.Paste(ev) {
		return
	}
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	m.buf.InsertText(s)
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.buf.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.buf.DeleteSelection()
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.insertPasted(s)
}
