package plan

import (
	"fmt"
	"strings"
)

// LockedAxis constrains how a dimension measures its wall
type LockedAxis int

const (
	// AxisNone measures parallel to the wall
	AxisNone LockedAxis = iota
	// AxisX measures the horizontal span; the dimension line is horizontal
	AxisX
	// AxisY measures the vertical span; the dimension line is vertical
	AxisY
)

func (a LockedAxis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// ParseLockedAxis parses "none", "x" or "y" (case-insensitive, empty = none)
func ParseLockedAxis(s string) (LockedAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AxisNone, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return AxisNone, fmt.Errorf("invalid locked axis %q (must be none, x or y)", s)
}

// MarshalText implements encoding.TextMarshaler
func (a LockedAxis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *LockedAxis) UnmarshalText(text []byte) error {
	parsed, err := ParseLockedAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
