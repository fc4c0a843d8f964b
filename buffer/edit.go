package buffer

import "strings"

// InsertText inserts s at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

func (b *Buffer) InsertRune(r rune) { b.InsertText(string(r)) }

func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with the previous line.
		b.edit(Range{Start: Pos{Row: row - 1, Col: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	case row < len(b.lines)-1:
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
	}
}

// Apply applies edits in order as one undoable step. Each edit's range is
// interpreted against the document as left by the previous edit and is
// clamped into bounds. The cursor moves to the end of the last effective
// edit and the selection is cleared.
func (b *Buffer) Apply(edits ...TextEdit) {
	prev := b.snapshot()
	changed := false
	next := b.cursor
	for _, e := range edits {
		if c, ok := b.replaceRange(e.Range, e.Text); ok {
			changed = true
			next = c
		}
	}
	if !changed {
		return
	}
	b.cursor = b.clampPos(next)
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
}

func (b *Buffer) edit(r Range, text string) {
	prev := b.snapshot()
	next, ok := b.replaceRange(r, text)
	if !ok {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
}

func (b *Buffer) replaceRange(r Range, text string) (Pos, bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}
	if textForRange(b.lines, r) == text {
		return b.cursor, false
	}

	prefix := b.lines[r.Start.Row][:r.Start.Col]
	suffix := b.lines[r.End.Row][r.End.Col:]

	parts := strings.Split(text, "\n")
	repl := make([][]rune, len(parts))
	for i, p := range parts {
		repl[i] = []rune(p)
	}
	lastLen := len(repl[len(repl)-1])

	first := make([]rune, 0, len(prefix)+len(repl[0]))
	first = append(first, prefix...)
	repl[0] = append(first, repl[0]...)
	repl[len(repl)-1] = append(repl[len(repl)-1], suffix...)

	next := Pos{Row: r.Start.Row + len(repl) - 1, Col: lastLen}
	if len(repl) == 1 {
		next.Col = len(prefix) + lastLen
	}

	out := make([][]rune, 0, len(b.lines)-(r.End.Row-r.Start.Row)+len(repl))
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)
	b.lines = out
	return next, true
}
