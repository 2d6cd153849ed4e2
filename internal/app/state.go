package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gowall/pkg/export"
	"github.com/philipparndt/gowall/pkg/watcher"
)

// CameraState holds the orthographic top-down camera
type CameraState struct {
	camera rl.Camera3D
	view   export.View // plan <-> screen mapping shared with the PNG export
}

// ViewSettings holds display settings
type ViewSettings struct {
	showGrid   bool
	showHints  bool
	showLabels bool
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	isPanning     bool
	lastMousePos  rl.Vector2
	lastClickTime time.Time
	lastClickWall string // wall whose label received the previous click
}

// DocumentState tracks the plan file on disk
type DocumentState struct {
	path      string
	dirty     bool
	lastSaved []byte // file content written by the last save
	unsub     func()
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // set from the watcher goroutine
}

// UIState holds UI-related state
type UIState struct {
	font        rl.Font
	input       string // length dialog text field
	inputWallID string // wall the input text was prefilled for
	status      string
	statusUntil time.Time
	buttons     []toolButton
}
