package editor

// Key is a keyboard key the editor reacts to
type Key int

const (
	KeyNone Key = iota
	KeyS
	KeyW
	KeyD
	KeyX
	KeyY
	KeyEscape
	KeyEnter
	KeyDelete
	KeyBackspace
	KeyControl
	KeyPlus
	KeyMinus
)

// Modifiers is a bit set of held modifier keys
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
)

// Has reports whether m contains mod
func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// Tool is the active editing tool
type Tool int

const (
	ToolSelect Tool = iota
	ToolWall
	ToolDimension
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolWall:
		return "wall"
	case ToolDimension:
		return "dimension"
	default:
		return "unknown"
	}
}

// toolForKey maps the tool shortcut keys
func toolForKey(k Key) (Tool, bool) {
	switch k {
	case KeyS:
		return ToolSelect, true
	case KeyW:
		return ToolWall, true
	case KeyD:
		return ToolDimension, true
	}
	return ToolSelect, false
}
