package block

import "github.com/iw2rmb/codeblock/buffer"

// ChangeEvent is delivered to Config.OnChange after the code text or the
// selected mode changed.
type ChangeEvent struct {
	Version uint64
	Data    Data
	Cursor  buffer.Pos
}
