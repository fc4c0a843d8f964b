package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/iw2rmb/codeblock/block"
	"github.com/iw2rmb/codeblock/mode"
)

var wantModes = []mode.Mode{
	{Key: "zig", Label: "Zig"},
	{Key: "go", Label: "Go"},
	{Key: "js", Label: "JavaScript"},
}

func TestParseYAML_KeepsModeOrder(t *testing.T) {
	f, err := ParseYAML([]byte(`
placeholder: "// code"
defaultMode: go
showLineNumbers: true
modes:
  zig: Zig
  go: Go
  js: JavaScript
`))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if !reflect.DeepEqual(f.Modes, wantModes) {
		t.Fatalf("modes: got %v, want %v", f.Modes, wantModes)
	}
	if f.Placeholder != "// code" || f.DefaultMode != "go" || !f.ShowLineNumbers {
		t.Fatalf("fields: got %+v", f)
	}
}

func TestParseYAML_RejectsListModes(t *testing.T) {
	if _, err := ParseYAML([]byte("modes:\n  - go\n")); err == nil {
		t.Fatalf("expected error for list modes")
	}
	if _, err := ParseYAML([]byte("modes:\n  go:\n    label: Go\n")); err == nil {
		t.Fatalf("expected error for nested label")
	}
}

func TestParseYAML_NoModes(t *testing.T) {
	f, err := ParseYAML([]byte("fallbackToFirst: true\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if len(f.Modes) != 0 || !f.FallbackToFirst {
		t.Fatalf("fields: got %+v", f)
	}
}

func TestParseJSON_CommentsAndOrder(t *testing.T) {
	f, err := ParseJSON([]byte(`{
  // languages shown in the selector
  "modes": {
    "zig": "Zig",
    "go": "Go",
    "js": "JavaScript", /* trailing comma */
  },
  "defaultMode": "go",
  "fallbackToFirst": true,
}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if !reflect.DeepEqual(f.Modes, wantModes) {
		t.Fatalf("modes: got %v, want %v", f.Modes, wantModes)
	}
	if f.DefaultMode != "go" || !f.FallbackToFirst {
		t.Fatalf("fields: got %+v", f)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	for _, in := range []string{
		`{"modes": {"go": 1}}`,
		`{"modes": ["go"]}`,
		`[1, 2]`,
		`{"modes": `,
	} {
		if _, err := ParseJSON([]byte(in)); err == nil {
			t.Fatalf("ParseJSON(%q): expected error", in)
		}
	}
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "blocks.yml")
	if err := os.WriteFile(yml, []byte("modes:\n  go: Go\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := Load(yml)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := f.Modes, []mode.Mode{{Key: "go", Label: "Go"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("modes: got %v, want %v", got, want)
	}

	toml := filepath.Join(dir, "blocks.toml")
	if err := os.WriteFile(toml, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(toml); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestApply(t *testing.T) {
	base := block.Config{Placeholder: "keep", DefaultMode: "js"}
	got := File{Modes: wantModes, ShowLineNumbers: true}.Apply(base)

	if got.Placeholder != "keep" || got.DefaultMode != "js" || !got.ShowLineNums {
		t.Fatalf("config: got %+v", got)
	}
	if !reflect.DeepEqual(got.Modes, wantModes) {
		t.Fatalf("modes: got %v, want %v", got.Modes, wantModes)
	}
}
