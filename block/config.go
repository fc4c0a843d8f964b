package block

import (
	"log/slog"

	"github.com/iw2rmb/codeblock/mode"
)

// DefaultPlaceholder is translated through the host when Config.Placeholder
// is empty.
const DefaultPlaceholder = "Enter a code"

// Config configures a code block. Zero values are valid.
type Config struct {
	Placeholder string

	// Modes in display order. Empty means a single plain-text mode.
	Modes []mode.Mode
	// DefaultMode preselects a key when the prior data has none.
	DefaultMode string
	// FallbackToFirst selects the first mode instead of mode.DefaultKey
	// when DefaultMode is unknown.
	FallbackToFirst bool

	ShowLineNums bool
	TabWidth     int // cell width of '\t'; default 4
	Style        Style
	KeyMap       KeyMap

	Clipboard Clipboard
	OnChange  func(ChangeEvent)

	// Logger receives configuration warnings; nil means slog.Default().
	Logger *slog.Logger

	// Forwarded to buffer.Options.
	HistoryLimit int
}

// Params is everything a host passes when constructing a block.
type Params struct {
	Data     Data
	Config   Config
	ReadOnly bool
	Host     Host
}
