// Package mode holds the language modes a code block can be labelled with
// and the rules for picking the initially selected one.
package mode

// DefaultKey and DefaultLabel form the registry used when none is given.
// DefaultKey is also the fallback for an unknown default mode.
const (
	DefaultKey   = "text"
	DefaultLabel = "Plain Text"
)

// Mode is one selectable entry: Key is persisted, Label is shown.
type Mode struct {
	Key   string
	Label string
}

// Registry is an ordered, immutable key to label mapping.
type Registry struct {
	modes []Mode
	index map[string]int
}

// NewRegistry builds a registry in the given order. A repeated key keeps
// its first position and takes the last label.
func NewRegistry(modes ...Mode) Registry {
	r := Registry{index: make(map[string]int, len(modes))}
	for _, m := range modes {
		if i, ok := r.index[m.Key]; ok {
			r.modes[i].Label = m.Label
			continue
		}
		r.index[m.Key] = len(r.modes)
		r.modes = append(r.modes, m)
	}
	return r
}

// FromMap builds a registry from keys in order, looking labels up in labels.
// Go maps are unordered, so callers pass the order explicitly.
func FromMap(order []string, labels map[string]string) Registry {
	modes := make([]Mode, 0, len(order))
	for _, k := range order {
		modes = append(modes, Mode{Key: k, Label: labels[k]})
	}
	return NewRegistry(modes...)
}

func (r Registry) Len() int { return len(r.modes) }

// Modes returns a copy of the entries in registration order.
func (r Registry) Modes() []Mode { return append([]Mode(nil), r.modes...) }

func (r Registry) Keys() []string {
	keys := make([]string, len(r.modes))
	for i, m := range r.modes {
		keys[i] = m.Key
	}
	return keys
}

func (r Registry) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Index returns the position of key, or -1.
func (r Registry) Index(key string) int {
	if i, ok := r.index[key]; ok {
		return i
	}
	return -1
}

func (r Registry) Label(key string) (string, bool) {
	i, ok := r.index[key]
	if !ok {
		return "", false
	}
	return r.modes[i].Label, true
}

// At returns the entry at position i. i must be in [0, Len()).
func (r Registry) At(i int) Mode { return r.modes[i] }
