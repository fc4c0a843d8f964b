package record

import (
	"reflect"
	"testing"

	"github.com/iw2rmb/codeblock/block"
)

func TestDecode_SingleRecord(t *testing.T) {
	got, err := Decode([]byte(`{"code": "a := 1\n", "mode": "go"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []block.Data{{Code: "a := 1\n", Mode: "go"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("records: got %+v, want %+v", got, want)
	}
}

func TestDecode_ArrayIsTolerant(t *testing.T) {
	got, err := Decode([]byte(`[
		{"code": "x", "mode": "js"},
		{"code": 42, "mode": null},
		{"mode": "go", "extra": true},
		"junk"
	]`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []block.Data{
		{Code: "x", Mode: "js"},
		{},
		{Mode: "go"},
		{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("records: got %+v, want %+v", got, want)
	}
}

func TestDecode_Errors(t *testing.T) {
	for _, in := range []string{`"code"`, `12`, `{"code":`, ``} {
		if _, err := Decode([]byte(in)); err == nil {
			t.Fatalf("Decode(%q): expected error", in)
		}
	}
}

func TestEncode(t *testing.T) {
	out, err := Encode([]block.Data{{Code: "<b>", Mode: "html"}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := string(out), "{\n  \"code\": \"\\u003cb\\u003e\",\n  \"mode\": \"html\"\n}\n"; got != want {
		t.Fatalf("single: got %q, want %q", got, want)
	}

	out, err = Encode(nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := string(out), "[]\n"; got != want {
		t.Fatalf("empty: got %q, want %q", got, want)
	}

	recs := []block.Data{{Code: "a", Mode: "go"}, {Code: "b"}}
	out, err = Encode(recs)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(back, recs) {
		t.Fatalf("round trip: got %+v, want %+v", back, recs)
	}
}
