// Package indent implements tab-key indentation for a plain-text code
// surface.
//
// All offsets are byte offsets into the text. The indentation unit and the
// line separator are ASCII, so an offset on a rune boundary stays on one.
package indent

import "strings"

// Unit is the indentation inserted or removed by one key press.
const Unit = "  "

// Edit is a single replacement of Text[Start:End] with Insert.
type Edit struct {
	Start  int
	End    int
	Insert string
}

// Result is the outcome of one indentation key press.
type Result struct {
	Text    string
	Caret   int
	Edit    Edit
	Changed bool
}

// LineStart returns the offset of the first byte of the line containing
// caret: one past the last '\n' before caret, or 0.
func LineStart(text string, caret int) int {
	caret = clampCaret(text, caret)
	return strings.LastIndexByte(text[:caret], '\n') + 1
}

// Indent inserts Unit at caret.
func Indent(text string, caret int) (string, int) {
	r := indent(text, caret)
	return r.Text, r.Caret
}

// Outdent removes Unit from the start of the caret's line when the line
// begins with exactly Unit. Otherwise text and caret are returned unchanged
// and ok is false. The new caret never moves before the line start.
func Outdent(text string, caret int) (out string, newCaret int, ok bool) {
	r := dedent(text, caret)
	return r.Text, r.Caret, r.Changed
}

// Apply runs Indent, or Outdent when outdent is set, and reports the edit
// that turns text into Result.Text.
func Apply(text string, caret int, outdent bool) Result {
	if outdent {
		return dedent(text, caret)
	}
	return indent(text, caret)
}

func indent(text string, caret int) Result {
	c := clampCaret(text, caret)
	return Result{
		Text:    text[:c] + Unit + text[c:],
		Caret:   c + len(Unit),
		Edit:    Edit{Start: c, End: c, Insert: Unit},
		Changed: true,
	}
}

func dedent(text string, caret int) Result {
	c := clampCaret(text, caret)
	s := LineStart(text, c)
	if !strings.HasPrefix(text[s:], Unit) {
		return Result{Text: text, Caret: c}
	}
	return Result{
		Text:    text[:s] + text[s+len(Unit):],
		Caret:   max(c-len(Unit), s),
		Edit:    Edit{Start: s, End: s + len(Unit)},
		Changed: true,
	}
}

func clampCaret(text string, caret int) int {
	if caret < 0 {
		return 0
	}
	if caret > len(text) {
		return len(text)
	}
	return caret
}
