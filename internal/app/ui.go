package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gowall/internal/editor"
	"github.com/philipparndt/gowall/pkg/analysis"
	"github.com/philipparndt/gowall/pkg/plan"
	"github.com/philipparndt/gowall/version"
)

var (
	colorPanel     = rl.NewColor(15, 23, 42, 220)
	colorPanelText = rl.NewColor(226, 232, 240, 255)
	colorDim       = rl.NewColor(148, 163, 184, 255)
	colorButton    = rl.NewColor(51, 65, 85, 255)
	colorActive    = rl.NewColor(37, 99, 235, 255)
)

type toolButton struct {
	tool  editor.Tool
	label string
	rect  rl.Rectangle
}

var toolLabels = []struct {
	tool  editor.Tool
	label string
}{
	{editor.ToolSelect, "Select (S)"},
	{editor.ToolWall, "Wall (W)"},
	{editor.ToolDimension, "Dimension (D)"},
}

// toolbarLayout places the tool buttons centered at the top
func (app *App) toolbarLayout() []toolButton {
	const fontSize, pad, gap = 16, 10, 6

	buttons := make([]toolButton, len(toolLabels))
	total := float32(0)
	for i, t := range toolLabels {
		size := rl.MeasureTextEx(app.UI.font, t.label, fontSize, 1)
		buttons[i] = toolButton{tool: t.tool, label: t.label,
			rect: rl.Rectangle{Width: size.X + 2*pad, Height: size.Y + pad}}
		total += buttons[i].rect.Width + gap
	}

	x := (float32(rl.GetScreenWidth()) - total + gap) / 2
	for i := range buttons {
		buttons[i].rect.X = x
		buttons[i].rect.Y = 10
		x += buttons[i].rect.Width + gap
	}
	return buttons
}

// clickToolbar switches tools when a toolbar button is under the mouse
func (app *App) clickToolbar(mouse rl.Vector2) bool {
	for _, b := range app.UI.buttons {
		if rl.CheckCollisionPointRec(mouse, b.rect) {
			app.editor.SetTool(b.tool)
			return true
		}
	}
	return false
}

// dialogLayout returns the length dialog box, its text field and buttons
func (app *App) dialogLayout() (box, field, apply, cancel rl.Rectangle) {
	const w, h = 320, 150
	box = rl.Rectangle{
		X:      (float32(rl.GetScreenWidth()) - w) / 2,
		Y:      (float32(rl.GetScreenHeight()) - h) / 2,
		Width:  w,
		Height: h,
	}
	field = rl.Rectangle{X: box.X + 20, Y: box.Y + 50, Width: w - 40, Height: 32}
	apply = rl.Rectangle{X: box.X + w - 200, Y: box.Y + h - 46, Width: 80, Height: 30}
	cancel = rl.Rectangle{X: box.X + w - 100, Y: box.Y + h - 46, Width: 80, Height: 30}
	return box, field, apply, cancel
}

// drawUI draws the user interface
func (app *App) drawUI() {
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	// Toolbar
	app.UI.buttons = app.toolbarLayout()
	for _, b := range app.UI.buttons {
		bg := colorButton
		if b.tool == app.editor.Tool() {
			bg = colorActive
		}
		rl.DrawRectangleRounded(b.rect, 0.3, 6, bg)
		size := rl.MeasureTextEx(app.UI.font, b.label, fontSize16, 1)
		rl.DrawTextEx(app.UI.font, b.label, rl.Vector2{
			X: b.rect.X + (b.rect.Width-size.X)/2,
			Y: b.rect.Y + (b.rect.Height-size.Y)/2,
		}, fontSize16, 1, rl.White)
	}

	// Plan info (top-left)
	y := float32(10)
	lineHeight := float32(20)
	name := app.Document.path
	if name == "" {
		name = "untitled"
	}
	if app.Document.dirty {
		name += " *"
	}
	rl.DrawTextEx(app.UI.font, name, rl.Vector2{X: 10, Y: y}, fontSize16, 1, colorWall)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("Walls: %d", app.editor.Plan().Len()), rl.Vector2{X: 10, Y: y}, fontSize14, 1, colorDim)
	y += lineHeight
	if w := app.editor.Selected(); w != nil {
		info := fmt.Sprintf("Selected: %s  %s  %s", app.format.Format(w.Length()),
			analysis.FormatAngle(w.Angle()), analysis.FormatVector(w.Center()))
		rl.DrawTextEx(app.UI.font, info, rl.Vector2{X: 10, Y: y}, fontSize14, 1, colorSelected)
		y += lineHeight
	}
	if app.editor.Tool() == editor.ToolWall && app.editor.DrawAxis() != plan.AxisNone {
		rl.DrawTextEx(app.UI.font, "Axis lock: "+app.editor.DrawAxis().String(), rl.Vector2{X: 10, Y: y}, fontSize14, 1, colorPreview)
	}

	// Seed count tweak (top-right)
	if visible, total := app.editor.SeedVisible(); total > 0 {
		text := fmt.Sprintf("Walls shown: %d / %d  (+/-)", visible, total)
		size := rl.MeasureTextEx(app.UI.font, text, fontSize14, 1)
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: screenWidth - size.X - 10, Y: 14}, fontSize14, 1, colorDim)
	}

	if app.View.showHints {
		app.drawHints(screenHeight)
	}

	// Status message (bottom-right)
	if app.UI.status != "" && time.Now().Before(app.UI.statusUntil) {
		size := rl.MeasureTextEx(app.UI.font, app.UI.status, fontSize14, 1)
		box := rl.Rectangle{X: screenWidth - size.X - 40, Y: screenHeight - size.Y - 40, Width: size.X + 20, Height: size.Y + 20}
		rl.DrawRectangleRec(box, colorPanel)
		rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: box.X + 10, Y: box.Y + 10}, fontSize14, 1, colorPanelText)
	}

	// Version and FPS (bottom-left)
	footer := fmt.Sprintf("gowall %s | %d FPS", version.GetVersion(), rl.GetFPS())
	rl.DrawTextEx(app.UI.font, footer, rl.Vector2{X: 10, Y: screenHeight - 20}, fontSize12, 1, colorDim)

	if app.editor.Dialog().Open {
		app.drawLengthDialog()
	}
}

// drawHints draws the contextual help panel for the active tool
func (app *App) drawHints(screenHeight float32) {
	const fontSize, lineHeight, pad = 14, 18, 10

	title, lines := app.editor.Hints()
	width := rl.MeasureTextEx(app.UI.font, title, fontSize+2, 1).X
	for _, l := range lines {
		width = max(width, rl.MeasureTextEx(app.UI.font, l, fontSize, 1).X)
	}
	height := float32(len(lines)+1)*lineHeight + 2*pad + 4

	box := rl.Rectangle{X: 10, Y: screenHeight - height - 30, Width: width + 2*pad, Height: height}
	rl.DrawRectangleRounded(box, 0.05, 6, colorPanel)

	y := box.Y + pad
	rl.DrawTextEx(app.UI.font, title, rl.Vector2{X: box.X + pad, Y: y}, fontSize+2, 1, rl.White)
	y += lineHeight + 4
	for _, l := range lines {
		rl.DrawTextEx(app.UI.font, l, rl.Vector2{X: box.X + pad, Y: y}, fontSize, 1, colorPanelText)
		y += lineHeight
	}
}

// drawLengthDialog draws the modal length entry
func (app *App) drawLengthDialog() {
	d := app.editor.Dialog()
	box, field, apply, cancel := app.dialogLayout()

	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), rl.NewColor(0, 0, 0, 80))
	rl.DrawRectangleRounded(box, 0.08, 6, rl.White)
	rl.DrawRectangleRoundedLines(box, 0.08, 6, colorLabelEdge)

	rl.DrawTextEx(app.UI.font, d.Title(), rl.Vector2{X: box.X + 20, Y: box.Y + 16}, 18, 1, colorLabelText)

	rl.DrawRectangleRec(field, colorBackground)
	rl.DrawRectangleLinesEx(field, 1, colorSelected)
	text := app.UI.input
	// blinking cursor
	if time.Now().UnixMilli()/500%2 == 0 {
		text += "|"
	}
	rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: field.X + 8, Y: field.Y + 7}, 18, 1, colorLabelText)
	if v, err := strconv.ParseFloat(strings.TrimSpace(app.UI.input), 64); err == nil {
		preview := app.format.Format(v)
		size := rl.MeasureTextEx(app.UI.font, preview, 14, 1)
		rl.DrawTextEx(app.UI.font, preview, rl.Vector2{X: field.X + field.Width - size.X - 8, Y: field.Y + 9}, 14, 1, colorDim)
	}

	for _, b := range []struct {
		rect  rl.Rectangle
		label string
		bg    rl.Color
	}{{apply, "Apply", colorActive}, {cancel, "Cancel", colorButton}} {
		rl.DrawRectangleRounded(b.rect, 0.3, 6, b.bg)
		size := rl.MeasureTextEx(app.UI.font, b.label, 16, 1)
		rl.DrawTextEx(app.UI.font, b.label, rl.Vector2{
			X: b.rect.X + (b.rect.Width-size.X)/2,
			Y: b.rect.Y + (b.rect.Height-size.Y)/2,
		}, 16, 1, rl.White)
	}
}
