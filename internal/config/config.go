// Package config loads code block settings from YAML or JSON files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/codeblock/block"
	"github.com/iw2rmb/codeblock/mode"
)

// File is the on-disk configuration. Modes keep the order of the file.
type File struct {
	Placeholder     string
	Modes           []mode.Mode
	DefaultMode     string
	FallbackToFirst bool
	ShowLineNumbers bool
}

// Apply copies the file settings into cfg. Zero fields leave cfg as is.
func (f File) Apply(cfg block.Config) block.Config {
	if f.Placeholder != "" {
		cfg.Placeholder = f.Placeholder
	}
	if len(f.Modes) > 0 {
		cfg.Modes = append([]mode.Mode(nil), f.Modes...)
	}
	if f.DefaultMode != "" {
		cfg.DefaultMode = f.DefaultMode
	}
	cfg.FallbackToFirst = cfg.FallbackToFirst || f.FallbackToFirst
	cfg.ShowLineNums = cfg.ShowLineNums || f.ShowLineNumbers
	return cfg
}

// Load reads a configuration file. The format follows the extension:
// .yaml and .yml are YAML, .json and .jsonc are JSON with comments allowed.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		f, err := ParseYAML(data)
		if err != nil {
			return File{}, fmt.Errorf("failed to parse YAML config: %w", err)
		}
		return f, nil
	case ".json", ".jsonc":
		f, err := ParseJSON(data)
		if err != nil {
			return File{}, fmt.Errorf("failed to parse JSON config: %w", err)
		}
		return f, nil
	default:
		return File{}, fmt.Errorf("unsupported config file format: %s (use .yaml, .yml, .json, or .jsonc)", ext)
	}
}

type yamlFile struct {
	Placeholder     string    `yaml:"placeholder"`
	Modes           yaml.Node `yaml:"modes"`
	DefaultMode     string    `yaml:"defaultMode"`
	FallbackToFirst bool      `yaml:"fallbackToFirst"`
	ShowLineNumbers bool      `yaml:"showLineNumbers"`
}

// ParseYAML decodes YAML configuration. modes is a mapping of key to label.
func ParseYAML(data []byte) (File, error) {
	var raw yamlFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return File{}, err
	}
	f := File{
		Placeholder:     raw.Placeholder,
		DefaultMode:     raw.DefaultMode,
		FallbackToFirst: raw.FallbackToFirst,
		ShowLineNumbers: raw.ShowLineNumbers,
	}

	n := &raw.Modes
	if n.Kind == 0 || n.Tag == "!!null" {
		return f, nil
	}
	if n.Kind != yaml.MappingNode {
		return File{}, fmt.Errorf("modes: expected a mapping at line %d", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return File{}, fmt.Errorf("modes.%s: expected a string label at line %d", k.Value, v.Line)
		}
		f.Modes = append(f.Modes, mode.Mode{Key: k.Value, Label: v.Value})
	}
	return f, nil
}

// ParseJSON decodes JSON configuration. Comments and trailing commas are
// accepted.
func ParseJSON(data []byte) (File, error) {
	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return File{}, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return File{}, fmt.Errorf("expected an object at the top level")
	}

	f := File{
		Placeholder:     root.Get("placeholder").String(),
		DefaultMode:     root.Get("defaultMode").String(),
		FallbackToFirst: root.Get("fallbackToFirst").Bool(),
		ShowLineNumbers: root.Get("showLineNumbers").Bool(),
	}

	modes := root.Get("modes")
	if !modes.Exists() || modes.Type == gjson.Null {
		return f, nil
	}
	if !modes.IsObject() {
		return File{}, fmt.Errorf("modes: expected an object")
	}
	var err error
	modes.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.String {
			err = fmt.Errorf("modes.%s: expected a string label", k.String())
			return false
		}
		f.Modes = append(f.Modes, mode.Mode{Key: k.String(), Label: v.String()})
		return true
	})
	if err != nil {
		return File{}, err
	}
	return f, nil
}
