package mode

import "fmt"

// Options is the host-supplied mode configuration.
type Options struct {
	Modes []Mode

	// DefaultMode is the key to preselect. Empty means unset.
	DefaultMode string

	// FallbackToFirst picks the first registered key instead of DefaultKey
	// when DefaultMode is not registered.
	FallbackToFirst bool
}

// Warning describes a recovered configuration problem.
type Warning struct {
	DefaultMode string
	Fallback    string
}

func (w Warning) String() string {
	return fmt.Sprintf("default mode %q is not registered, using %q", w.DefaultMode, w.Fallback)
}

// Resolution is the effective registry and the initially selected key.
type Resolution struct {
	Modes    Registry
	Initial  string
	Warnings []Warning
}

// Resolve applies the selection rules:
//   - no modes: the registry is {DefaultKey: DefaultLabel};
//   - DefaultMode registered: it is selected;
//   - DefaultMode unknown: one Warning, and DefaultKey is selected even if
//     it is not registered (or the first key with FallbackToFirst);
//   - DefaultMode unset: the first registered key is selected.
func Resolve(opt Options) Resolution {
	reg := NewRegistry(opt.Modes...)
	if reg.Len() == 0 {
		reg = NewRegistry(Mode{Key: DefaultKey, Label: DefaultLabel})
	}

	res := Resolution{Modes: reg}
	switch {
	case opt.DefaultMode == "":
		res.Initial = reg.At(0).Key
	case reg.Has(opt.DefaultMode):
		res.Initial = opt.DefaultMode
	default:
		res.Initial = DefaultKey
		if opt.FallbackToFirst {
			res.Initial = reg.At(0).Key
		}
		res.Warnings = append(res.Warnings, Warning{DefaultMode: opt.DefaultMode, Fallback: res.Initial})
	}
	return res
}

// Initial returns the mode to show first: the persisted key when there is
// one, the resolved key otherwise. Persisted keys are not validated.
func Initial(persisted string, res Resolution) string {
	if persisted != "" {
		return persisted
	}
	return res.Initial
}
