package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gowall/internal/editor"
	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/plan"
)

var (
	colorBackground = rl.NewColor(248, 250, 252, 255)
	colorGrid       = rl.NewColor(226, 232, 240, 255)
	colorWall       = rl.NewColor(15, 23, 42, 255)
	colorSelected   = rl.NewColor(37, 99, 235, 255)
	colorPreview    = rl.NewColor(249, 115, 22, 255)
	colorDimension  = rl.NewColor(59, 130, 246, 255)
	colorLocked     = rl.NewColor(220, 38, 38, 255)
	colorLabelText  = rl.NewColor(30, 41, 59, 255)
	colorLabelFill  = rl.NewColor(255, 255, 255, 235)
	colorLabelEdge  = rl.NewColor(203, 213, 225, 255)
	colorHandle     = rl.White
)

const labelPadding = 4

// drawGrid draws grid lines covering the visible part of the plan plane
func (app *App) drawGrid() {
	spacing := app.cfg.View.GridSpacing
	v := app.Camera.view
	if spacing <= 0 || spacing*v.Zoom < 4 {
		return
	}
	lo := v.ToPlan(0, float64(rl.GetScreenHeight()))
	hi := v.ToPlan(float64(rl.GetScreenWidth()), 0)

	for x := math.Floor(lo.X/spacing) * spacing; x <= hi.X; x += spacing {
		rl.DrawLine3D(toRL(geometry.NewVector2(x, lo.Y)), toRL(geometry.NewVector2(x, hi.Y)), colorGrid)
	}
	for y := math.Floor(lo.Y/spacing) * spacing; y <= hi.Y; y += spacing {
		rl.DrawLine3D(toRL(geometry.NewVector2(lo.X, y)), toRL(geometry.NewVector2(hi.X, y)), colorGrid)
	}
}

// drawWalls draws each wall as a flat box along its center line
func (app *App) drawWalls() {
	selected := app.editor.SelectedID()
	for _, w := range app.editor.VisibleWalls() {
		c := colorWall
		if w.ID() == selected {
			c = colorSelected
		}
		drawWallBox(w, c)
	}
	if preview := app.editor.Preview(); preview != nil {
		drawWallBox(preview, colorPreview)
	}
}

func drawWallBox(w *plan.Wall, c rl.Color) {
	center := w.Center()
	rl.PushMatrix()
	rl.Translatef(float32(center.X), float32(center.Y), 0)
	rl.Rotatef(float32(w.Angle()*180/math.Pi), 0, 0, 1)
	rl.DrawCube(rl.Vector3{}, float32(w.Length()), float32(w.Thickness()), 0.01, c)
	rl.PopMatrix()
}

// drawDimensions draws the cached dimension segments of all visible walls
// in one pass
func (app *App) drawDimensions() {
	var positions []float64
	visible := app.editor.VisibleWalls()
	if len(visible) == app.editor.Plan().Len() {
		positions = app.editor.Plan().DimensionPositions()
	} else {
		for _, w := range visible {
			if d := w.Dimension(); d != nil {
				positions = append(positions, d.Points()...)
			}
		}
	}

	// each dimension contributes three segments of two points
	for i := 0; i+6 <= len(positions); i += 6 {
		a := rl.Vector3{X: float32(positions[i]), Y: float32(positions[i+1]), Z: float32(positions[i+2])}
		b := rl.Vector3{X: float32(positions[i+3]), Y: float32(positions[i+4]), Z: float32(positions[i+5])}
		rl.DrawLine3D(a, b, colorDimension)
	}
}

// drawHandles draws the endpoint handles of the selected wall
func (app *App) drawHandles() {
	w := app.editor.Selected()
	if w == nil || app.editor.Tool() == editor.ToolWall {
		return
	}
	radius := float32(editor.HandleRadius * app.Camera.view.Zoom)
	for _, p := range []geometry.Vector3{w.StartPoint(), w.EndPoint()} {
		pos := app.toScreen(p)
		rl.DrawCircleV(pos, radius, colorHandle)
		rl.DrawCircleLines(int32(pos.X), int32(pos.Y), radius, colorSelected)
	}
}

// labelFontSize returns the label font size at the current zoom
func (app *App) labelFontSize() float32 {
	scale := plan.LabelScale(app.Camera.view.Zoom, app.cfg.Labels.LabelScaleOptions)
	return float32(app.cfg.Labels.FontSize * scale)
}

// labelSize measures the label box of a dimension in pixels
func (app *App) labelSize(line plan.DimensionLine) (string, rl.Vector2) {
	text := app.format.Format(line.Length)
	size := rl.MeasureTextEx(app.UI.font, text, app.labelFontSize(), 1)
	return text, rl.Vector2{X: size.X + 2*labelPadding, Y: size.Y + 2*labelPadding}
}

// labelExtent returns the half size of a wall's label in plan units
func (app *App) labelExtent(w *plan.Wall) (float64, float64) {
	line, ok := w.DimensionLine()
	if !ok {
		return 0, 0
	}
	_, size := app.labelSize(line)
	zoom := app.Camera.view.Zoom
	return float64(size.X) / 2 / zoom, float64(size.Y) / 2 / zoom
}

// drawLabels draws the length labels rotated along their dimension lines
func (app *App) drawLabels() {
	fontSize := app.labelFontSize()
	for _, w := range app.editor.VisibleWalls() {
		line, ok := w.DimensionLine()
		if !ok {
			continue
		}
		text, size := app.labelSize(line)
		pos := app.toScreen(line.DimCenter)
		// screen Y points down, so plan rotation is inverted
		rotation := float32(-line.LabelAngle * 180 / math.Pi)
		origin := rl.Vector2{X: size.X / 2, Y: size.Y / 2}

		edge := colorLabelEdge
		if w.Dimension().LockedAxis() != plan.AxisNone {
			edge = colorLocked
		}
		rl.DrawRectanglePro(rl.Rectangle{X: pos.X, Y: pos.Y, Width: size.X + 2, Height: size.Y + 2},
			rl.Vector2{X: origin.X + 1, Y: origin.Y + 1}, rotation, edge)
		rl.DrawRectanglePro(rl.Rectangle{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y},
			origin, rotation, colorLabelFill)
		rl.DrawTextPro(app.UI.font, text, pos,
			rl.Vector2{X: origin.X - labelPadding, Y: origin.Y - labelPadding},
			rotation, fontSize, 1, colorLabelText)
	}
}
