package buffer

import "testing"

func TestBuffer_NewAndText(t *testing.T) {
	b := New("a\nbc\n", Options{})
	if got, want := b.Text(), "a\nbc\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.LineCount(), 3; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	if got, want := b.Line(1), "bc"; got != want {
		t.Fatalf("line(1)=%q, want %q", got, want)
	}
	if got := b.Line(7); got != "" {
		t.Fatalf("line(7)=%q, want empty", got)
	}
}

func TestBuffer_EmptyDocumentHasOneLine(t *testing.T) {
	b := New("", Options{})
	if got, want := b.LineCount(), 1; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
}

func TestBuffer_SetCursorClampsAndBumpsVersion(t *testing.T) {
	b := New("ab\nc", Options{})
	v := b.Version()

	b.SetCursor(Pos{Row: 5, Col: 9})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	b.SetCursor(Pos{Row: 1, Col: 1})
	if got := b.Version(); got != v+1 {
		t.Fatalf("no-op SetCursor bumped version: %d", got)
	}
}

func TestBuffer_SetSelectionAndSelectedText(t *testing.T) {
	b := New("hello\nworld", Options{})
	b.SetSelection(Range{Start: Pos{Row: 1, Col: 2}, End: Pos{Row: 0, Col: 3}})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	if want := (Range{Start: Pos{Row: 0, Col: 3}, End: Pos{Row: 1, Col: 2}}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got, want := b.SelectedText(), "lo\nwo"; got != want {
		t.Fatalf("selected text=%q, want %q", got, want)
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_SetTextResetsHistory(t *testing.T) {
	b := New("", Options{})
	b.InsertText("x")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	b.SetText("fresh")
	if got, want := b.Text(), "fresh"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if b.CanUndo() {
		t.Fatalf("expected history cleared")
	}
}

func TestBuffer_ReplaceAllIsUndoable(t *testing.T) {
	b := New("old\ntext", Options{})
	b.ReplaceAll("new")
	if got, want := b.Text(), "new"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if !b.Undo() {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), "old\ntext"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
}
