package buffer

type bufferSnapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if s.sel.active {
		anchor, end := b.clampPos(s.sel.anchor), b.clampPos(s.sel.end)
		if anchor != end {
			b.sel = selectionState{active: true, anchor: anchor, end: end}
		}
	}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

func pushBounded(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	n := len(b.hist.undo)
	if n == 0 {
		return false
	}
	prev := b.hist.undo[n-1]
	b.hist.undo = b.hist.undo[:n-1]
	b.hist.redo = append(b.hist.redo, b.snapshot())
	b.restore(prev)
	b.version++
	return true
}

func (b *Buffer) Redo() bool {
	n := len(b.hist.redo)
	if n == 0 {
		return false
	}
	next := b.hist.redo[n-1]
	b.hist.redo = b.hist.redo[:n-1]
	if b.opt.HistoryLimit > 0 {
		b.hist.undo = pushBounded(b.hist.undo, b.snapshot(), b.opt.HistoryLimit)
	}
	b.restore(next)
	b.version++
	return true
}
