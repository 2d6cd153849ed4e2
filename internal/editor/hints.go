package editor

var sharedHints = []string{"S: Select", "W: Draw Wall", "D: Dimension Tool"}

// Hints returns the title and help lines for the active tool
func (e *Editor) Hints() (string, []string) {
	hints := append([]string(nil), sharedHints...)

	switch e.tool {
	case ToolWall:
		return "Wall Drawing", append(hints,
			"Click once to set wall start point",
			"Move pointer to preview rubber wall",
			"Click again to set endpoint and finalize",
			"Press X to lock horizontal, Y to lock vertical",
			"Esc to cancel current wall",
		)
	case ToolDimension:
		return "Dimension Tool", append(hints,
			"Click a wall to select/add a dimension",
			"Drag dimension line to change offset",
			"Press X for horizontal lock, Y for vertical lock",
			"Press Ctrl to unlock axis",
			"Double-click label to edit length",
		)
	default:
		return "Select Tool", append(hints,
			"Click a wall to select it",
			"Drag white endpoint handles to edit wall shape",
			"Delete removes the selected wall",
		)
	}
}
