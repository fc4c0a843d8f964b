package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000; negative disables history
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer holds the document text, cursor and selection. Every effective
// mutation, including cursor and selection moves, bumps Version.
type Buffer struct {
	lines   [][]rune
	version uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// SetText replaces the whole document, moves the cursor to the start and
// clears history. It is the load path, not an edit.
func (b *Buffer) SetText(text string) {
	if text == b.Text() && b.cursor == (Pos{}) && !b.sel.active {
		return
	}
	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.hist = historyState{}
	b.version++
}

// ReplaceAll replaces the whole document as one undoable edit and leaves the
// cursor at the end of the new text.
func (b *Buffer) ReplaceAll(text string) {
	last := len(b.lines) - 1
	b.Apply(TextEdit{
		Range: Range{End: Pos{Row: last, Col: len(b.lines[last])}},
		Text:  text,
	})
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

// LineCount returns the number of rows; an empty document has one.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection selects r and puts the cursor at r.End. An empty range
// clears the selection.
func (b *Buffer) SetSelection(r Range) {
	r = ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: r.Start, end: r.End}
	if r.Start == r.End {
		next = selectionState{}
	}
	if next == b.sel && b.cursor == r.End {
		return
	}
	b.sel = next
	b.cursor = r.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForRange(b.lines, r)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}

func textForRange(lines [][]rune, r Range) string {
	r = NormalizeRange(r)
	if r.Start.Row == r.End.Row {
		return string(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(string(lines[row][from:to]))
	}
	return sb.String()
}
