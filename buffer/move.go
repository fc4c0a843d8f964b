package buffer

import "github.com/iw2rmb/codeblock/internal/grapheme"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, extends the selection; if false, clears it
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	next := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	} else if prevSel.active && m.Unit == MoveRune && (m.Dir == DirLeft || m.Dir == DirRight) {
		// Collapse to the selection edge in the direction of travel.
		r := NormalizeRange(Range{Start: prevSel.anchor, End: prevSel.end})
		next = r.Start
		if m.Dir == DirRight {
			next = r.End
		}
	}

	if prevCursor == next && prevSel == nextSel {
		return
	}
	b.cursor = next
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveRune:
		return b.moveRune(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveRune(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		if p.Col > 0 {
			return Pos{Row: p.Row, Col: p.Col - 1}
		}
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: b.lineLen(p.Row - 1)}
		}
	case DirRight:
		if p.Col < b.lineLen(p.Row) {
			return Pos{Row: p.Row, Col: p.Col + 1}
		}
		if p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1}
		}
	case DirUp, DirDown, DirHome, DirEnd:
		return b.moveLine(p, dir)
	}
	return p
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return b.moveRune(p, DirLeft)
		}
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		if p.Col == len(line) {
			return b.moveRune(p, DirRight)
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirUp:
		if p.Row == 0 {
			return Pos{}
		}
		return Pos{Row: p.Row - 1, Col: min(p.Col, b.lineLen(p.Row-1))}
	case DirDown:
		last := len(b.lines) - 1
		if p.Row == last {
			return Pos{Row: last, Col: b.lineLen(last)}
		}
		return Pos{Row: p.Row + 1, Col: min(p.Col, b.lineLen(p.Row+1))}
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, Col: b.lineLen(p.Row)}
	default:
		return b.moveRune(p, dir)
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp, DirLeft:
		return Pos{}
	default:
		last := len(b.lines) - 1
		return Pos{Row: last, Col: b.lineLen(last)}
	}
}

func prevWordBoundary(line []rune, col int) int {
	i := col
	for i > 0 && !grapheme.IsWord(line[i-1]) {
		i--
	}
	for i > 0 && grapheme.IsWord(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := col
	for i < len(line) && !grapheme.IsWord(line[i]) {
		i++
	}
	for i < len(line) && grapheme.IsWord(line[i]) {
		i++
	}
	return i
}
