package app

import (
	"math"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gowall/internal/editor"
)

const doubleClickTime = 400 * time.Millisecond

// keyBindings maps raylib keys to editor keys
var keyBindings = []struct {
	raylib int32
	key    editor.Key
}{
	{rl.KeyS, editor.KeyS},
	{rl.KeyW, editor.KeyW},
	{rl.KeyD, editor.KeyD},
	{rl.KeyX, editor.KeyX},
	{rl.KeyY, editor.KeyY},
	{rl.KeyEscape, editor.KeyEscape},
	{rl.KeyDelete, editor.KeyDelete},
	{rl.KeyBackspace, editor.KeyBackspace},
	{rl.KeyLeftControl, editor.KeyControl},
	{rl.KeyRightControl, editor.KeyControl},
	{rl.KeyEqual, editor.KeyPlus},
	{rl.KeyKpAdd, editor.KeyPlus},
	{rl.KeyMinus, editor.KeyMinus},
	{rl.KeyKpSubtract, editor.KeyMinus},
}

func modifiers() editor.Modifiers {
	var mods editor.Modifiers
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper) {
		mods |= editor.ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		mods |= editor.ModShift
	}
	return mods
}

// handleInput processes user input
func (app *App) handleInput() {
	mods := modifiers()

	if app.editor.Dialog().Open {
		app.handleDialogInput()
		return
	}

	// Ctrl+S saves, the editor never sees it
	if mods.Has(editor.ModCtrl) && rl.IsKeyPressed(rl.KeyS) {
		app.save()
	} else {
		for _, b := range keyBindings {
			if rl.IsKeyPressed(b.raylib) {
				app.editor.KeyPress(b.key, mods)
			}
		}
	}

	// View shortcuts
	if !mods.Has(editor.ModCtrl) {
		if rl.IsKeyPressed(rl.KeyF) || rl.IsKeyPressed(rl.KeyHome) {
			app.fitView()
		}
		if rl.IsKeyPressed(rl.KeyG) {
			app.View.showGrid = !app.View.showGrid
		}
		if rl.IsKeyPressed(rl.KeyH) {
			app.View.showHints = !app.View.showHints
		}
		if rl.IsKeyPressed(rl.KeyL) {
			app.View.showLabels = !app.View.showLabels
		}
	}

	app.handleMouse(mods)
}

func (app *App) handleMouse(mods editor.Modifiers) {
	mouse := rl.GetMousePosition()
	delta := rl.Vector2Subtract(mouse, app.Interaction.lastMousePos)
	app.Interaction.lastMousePos = mouse
	moved := delta.X != 0 || delta.Y != 0

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.zoomAt(mouse, math.Pow(1.1, float64(wheel)))
	}

	// Pan with the middle button, or Shift + left button
	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) ||
		(mods.Has(editor.ModShift) && rl.IsMouseButtonPressed(rl.MouseLeftButton)) {
		app.Interaction.isPanning = true
	}
	if app.Interaction.isPanning {
		if rl.IsMouseButtonDown(rl.MouseMiddleButton) || rl.IsMouseButtonDown(rl.MouseLeftButton) {
			if moved {
				app.pan(delta)
			}
			return
		}
		app.Interaction.isPanning = false
	}

	world := app.mouseWorld()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if app.clickToolbar(mouse) {
			return
		}
		hit := app.editor.HitTest(world, app.hitOptions())
		if hit.Kind == editor.HitLabel && app.isDoubleClick(hit.WallID) {
			app.openLengthDialog(hit.WallID)
			return
		}
		app.editor.PointerDown(world, hit)
	}

	if moved {
		app.editor.PointerMove(world)
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.editor.PointerUp(world)
	}
}

// hitOptions converts the pixel pick tolerance to plan units
func (app *App) hitOptions() editor.HitOptions {
	opts := editor.HitOptions{Tolerance: app.cfg.View.PickTolerance / app.Camera.view.Zoom}
	if app.View.showLabels {
		opts.LabelExtent = app.labelExtent
	}
	return opts
}

// isDoubleClick records a label click and reports whether it completes a
// double click on the same label
func (app *App) isDoubleClick(wallID string) bool {
	now := time.Now()
	double := app.Interaction.lastClickWall == wallID && now.Sub(app.Interaction.lastClickTime) < doubleClickTime
	if double {
		app.Interaction.lastClickWall = ""
	} else {
		app.Interaction.lastClickWall = wallID
		app.Interaction.lastClickTime = now
	}
	return double
}

func (app *App) openLengthDialog(wallID string) {
	app.editor.Cancel()
	app.editor.DoubleClickLabel(wallID)
	d := app.editor.Dialog()
	if d.Open {
		app.UI.input = d.Value
		app.UI.inputWallID = d.WallID
	}
}

// handleDialogInput edits the length field while the dialog is open
func (app *App) handleDialogInput() {
	d := app.editor.Dialog()
	if app.UI.inputWallID != d.WallID {
		app.UI.input = d.Value
		app.UI.inputWallID = d.WallID
	}

	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		if strings.ContainsRune("0123456789.-+eE", r) && len(app.UI.input) < 24 {
			app.UI.input += string(r)
		}
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && app.UI.input != "" {
		app.UI.input = app.UI.input[:len(app.UI.input)-1]
	}

	_, _, apply, cancel := app.dialogLayout()
	mouse := rl.GetMousePosition()
	clicked := rl.IsMouseButtonPressed(rl.MouseLeftButton)

	switch {
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) ||
		(clicked && rl.CheckCollisionPointRec(mouse, apply)):
		app.commitLength()
	case rl.IsKeyPressed(rl.KeyEscape) || (clicked && rl.CheckCollisionPointRec(mouse, cancel)):
		app.editor.KeyPress(editor.KeyEscape, 0)
	}

	if !app.editor.Dialog().Open {
		app.UI.inputWallID = ""
	}
}

func (app *App) commitLength() {
	if err := app.editor.CommitLength(app.UI.input); err != nil {
		app.setStatus("Length not applied: " + err.Error())
	}
}
