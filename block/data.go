package block

// Data is the persisted record of a code block.
type Data struct {
	Code string `json:"code"`
	Mode string `json:"mode"`
}

// Tool is the surface a host drives: render, serialize, and accept pasted
// content.
type Tool interface {
	View() string
	Save() Data
	Paste(ev PasteEvent) bool
}

var _ Tool = Model{}
