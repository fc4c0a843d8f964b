package indent

import (
	"strings"
	"testing"
)

func TestLineStart(t *testing.T) {
	cases := []struct {
		text  string
		caret int
		want  int
	}{
		{text: "", caret: 0, want: 0},
		{text: "foo", caret: 2, want: 0},
		{text: "a\nbc", caret: 3, want: 2},
		{text: "a\nbc", caret: 2, want: 2},
		{text: "a\nbc", caret: 1, want: 0},
		{text: "a\n\n", caret: 3, want: 3},
		{text: "abc", caret: 99, want: 0},
	}
	for _, tc := range cases {
		if got := LineStart(tc.text, tc.caret); got != tc.want {
			t.Fatalf("LineStart(%q, %d)=%d, want %d", tc.text, tc.caret, got, tc.want)
		}
	}
}

func TestIndent_AtLineStart(t *testing.T) {
	got, caret := Indent("foo", 0)
	if got != "  foo" || caret != 2 {
		t.Fatalf("indent: got %q,%d, want %q,%d", got, caret, "  foo", 2)
	}
}

func TestIndent_MidLineInsertsAtCaret(t *testing.T) {
	got, caret := Indent("a\nbar", 3)
	if got != "a\nb  ar" || caret != 5 {
		t.Fatalf("indent: got %q,%d, want %q,%d", got, caret, "a\nb  ar", 5)
	}
}

func TestOutdent_RemovesLeadingUnit(t *testing.T) {
	got, caret, ok := Outdent("  foo", 2)
	if !ok || got != "foo" || caret != 0 {
		t.Fatalf("outdent: got %q,%d,%v, want %q,%d,true", got, caret, ok, "foo", 0)
	}
}

func TestOutdent_NotIndentedIsNoOp(t *testing.T) {
	got, caret, ok := Outdent("foo", 1)
	if ok || got != "foo" || caret != 1 {
		t.Fatalf("outdent: got %q,%d,%v, want %q,%d,false", got, caret, ok, "foo", 1)
	}
}

func TestOutdent_OnlyCurrentLine(t *testing.T) {
	text := "  a\n  b\n  c"
	got, caret, ok := Outdent(text, 7) // end of "  b"
	if !ok || got != "  a\nb\n  c" || caret != 5 {
		t.Fatalf("outdent: got %q,%d,%v, want %q,%d,true", got, caret, ok, "  a\nb\n  c", 5)
	}
}

func TestOutdent_PartialOrTabIndentIsNoOp(t *testing.T) {
	for _, text := range []string{" foo", "\tfoo", " \tfoo", ""} {
		got, caret, ok := Outdent(text, len(text))
		if ok || got != text || caret != len(text) {
			t.Fatalf("outdent(%q): got %q,%d,%v, want unchanged", text, got, caret, ok)
		}
	}
}

func TestOutdent_RemovesOnlyOneUnit(t *testing.T) {
	got, caret, ok := Outdent("    foo", 7)
	if !ok || got != "  foo" || caret != 5 {
		t.Fatalf("outdent: got %q,%d,%v, want %q,%d,true", got, caret, ok, "  foo", 5)
	}
}

func TestOutdent_CaretInsideUnitClampsToLineStart(t *testing.T) {
	got, caret, ok := Outdent("x\n  foo", 3) // between the two spaces
	if !ok || got != "x\nfoo" || caret != 2 {
		t.Fatalf("outdent: got %q,%d,%v, want %q,%d,true", got, caret, ok, "x\nfoo", 2)
	}
}

func TestApply_ReportsEdit(t *testing.T) {
	r := Apply("ab\n  cd", 6, true)
	if !r.Changed {
		t.Fatalf("expected change")
	}
	if want := (Edit{Start: 3, End: 5}); r.Edit != want {
		t.Fatalf("edit: got %+v, want %+v", r.Edit, want)
	}
	if got := r.Text; got != "ab\ncd" {
		t.Fatalf("text: got %q, want %q", got, "ab\ncd")
	}

	r = Apply("ab", 1, false)
	if want := (Edit{Start: 1, End: 1, Insert: Unit}); r.Edit != want {
		t.Fatalf("edit: got %+v, want %+v", r.Edit, want)
	}
}

func TestApply_EditReproducesText(t *testing.T) {
	for _, s := range samples() {
		for c := 0; c <= len(s); c++ {
			for _, out := range []bool{false, true} {
				r := Apply(s, c, out)
				if !r.Changed {
					continue
				}
				got := s[:r.Edit.Start] + r.Edit.Insert + s[r.Edit.End:]
				if got != r.Text {
					t.Fatalf("Apply(%q, %d, %v): edit yields %q, text is %q", s, c, out, got, r.Text)
				}
			}
		}
	}
}

func TestIndent_LengthGrowsByUnitAndRoundTrips(t *testing.T) {
	for _, s := range samples() {
		for c := 0; c <= len(s); c++ {
			got, caret := Indent(s, c)
			if len(got) != len(s)+len(Unit) {
				t.Fatalf("Indent(%q, %d): len=%d, want %d", s, c, len(got), len(s)+len(Unit))
			}
			if caret != c+len(Unit) {
				t.Fatalf("Indent(%q, %d): caret=%d, want %d", s, c, caret, c+len(Unit))
			}
			if back := got[:c] + got[c+len(Unit):]; back != s {
				t.Fatalf("Indent(%q, %d): removing unit gives %q", s, c, back)
			}
		}
	}
}

func TestOutdent_NoOpWhenLineNotIndented(t *testing.T) {
	for _, s := range samples() {
		for c := 0; c <= len(s); c++ {
			start := LineStart(s, c)
			if strings.HasPrefix(s[start:], Unit) {
				continue
			}
			got, caret, ok := Outdent(s, c)
			if ok || got != s || caret != c {
				t.Fatalf("Outdent(%q, %d)=%q,%d,%v, want no-op", s, c, got, caret, ok)
			}
		}
	}
}

func TestOutdentThenIndent_RestoresIndentedLine(t *testing.T) {
	for _, s := range samples() {
		for c := 0; c <= len(s); c++ {
			start := LineStart(s, c)
			if !strings.HasPrefix(s[start:], Unit) {
				continue
			}
			out, caret, ok := Outdent(s, c)
			if !ok {
				t.Fatalf("Outdent(%q, %d): expected change", s, c)
			}
			if want := max(c-len(Unit), start); caret != want {
				t.Fatalf("Outdent(%q, %d): caret=%d, want %d", s, c, caret, want)
			}
			if c != start+len(Unit) {
				continue
			}
			back, backCaret := Indent(out, caret)
			if back != s || backCaret != c {
				t.Fatalf("Outdent then Indent(%q, %d)=%q,%d, want %q,%d", s, c, back, backCaret, s, c)
			}
		}
	}
}

func TestClampsOutOfRangeCaret(t *testing.T) {
	got, caret := Indent("ab", 10)
	if got != "ab  " || caret != 4 {
		t.Fatalf("indent: got %q,%d, want %q,%d", got, caret, "ab  ", 4)
	}
	got, caret = Indent("ab", -3)
	if got != "  ab" || caret != 2 {
		t.Fatalf("indent: got %q,%d, want %q,%d", got, caret, "  ab", 2)
	}
}

func samples() []string {
	return []string{
		"",
		"foo",
		"  foo",
		"    foo",
		" foo",
		"\tfoo",
		"a\n  b\nc",
		"  a\n\n  ",
		"func main() {\n  fmt.Println(\"hi\")\n}",
		"ñ\n  日本",
	}
}
