// Package record reads and writes persisted code block records.
//
// The wire shape of one record is {"code": "...", "mode": "..."}. Decoding
// is tolerant: fields that are missing or not strings become empty, and a
// file may hold one record or an array of them.
package record

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/iw2rmb/codeblock/block"
)

// Decode parses one record or an array of records.
func Decode(data []byte) ([]block.Data, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	switch {
	case root.IsObject():
		return []block.Data{fromResult(root)}, nil
	case root.IsArray():
		var out []block.Data
		root.ForEach(func(_, v gjson.Result) bool {
			out = append(out, fromResult(v))
			return true
		})
		return out, nil
	default:
		return nil, fmt.Errorf("expected an object or an array, got %s", root.Type)
	}
}

func fromResult(r gjson.Result) block.Data {
	return block.Data{
		Code: stringField(r, "code"),
		Mode: stringField(r, "mode"),
	}
}

func stringField(r gjson.Result, name string) string {
	v := r.Get(name)
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}

// Encode writes records as an indented JSON array. A single record is
// written as an object.
func Encode(recs []block.Data) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if len(recs) == 1 {
		out, err = json.MarshalIndent(recs[0], "", "  ")
	} else {
		if recs == nil {
			recs = []block.Data{}
		}
		out, err = json.MarshalIndent(recs, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return append(out, '\n'), nil
}
