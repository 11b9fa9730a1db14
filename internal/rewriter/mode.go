package rewriter

import "fmt"

// Mode selects the overflow-handling strategy applied to arithmetic
// operators during one rewrite. It is fixed for the duration of a
// traversal; there is no combined or nested mode.
type Mode int

const (
	// ModePanicking rewrites arithmetic into checked calls that panic
	// when the result cannot be represented.
	ModePanicking Mode = iota
	// ModeWrapping rewrites arithmetic into modulo-width calls.
	ModeWrapping
	// ModeSaturating rewrites arithmetic into calls that clamp to the
	// operand type's min/max. Shifts are only available with the
	// saturating-shift capability enabled.
	ModeSaturating
	// ModeChecked rewrites every sub-expression into an optional value;
	// an overflow anywhere yields an absent top-level result.
	ModeChecked
)

var modeNames = map[Mode]string{
	ModePanicking:  "panicking",
	ModeWrapping:   "wrapping",
	ModeSaturating: "saturating",
	ModeChecked:    "checked",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps one of the four policy names (panicking, wrapping,
// saturating, checked) to its Mode.
func ParseMode(name string) (Mode, error) {
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want panicking, wrapping, saturating, or checked)", name)
}
