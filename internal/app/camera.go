package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gowall/pkg/export"
	"github.com/philipparndt/gowall/pkg/geometry"
)

// fitMargin is the border kept free when fitting the plan, in pixels
const fitMargin = 60

// fitView centers the plan and zooms so that it fills the window
func (app *App) fitView() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	p := app.editor.Plan()
	if p.Len() == 0 {
		app.Camera.view = export.ViewAt(geometry.Vector3{}, app.cfg.View.Zoom, w, h)
		return
	}

	fit := export.NewView(p, export.Options{
		Width:      w,
		Height:     h,
		Margin:     fitMargin,
		LabelScale: app.cfg.Labels.LabelScaleOptions,
	})
	app.Camera.view = export.ViewAt(fit.Center(), app.clampZoom(fit.Zoom), w, h)
}

func (app *App) clampZoom(zoom float64) float64 {
	return geometry.Clamp(zoom, app.cfg.View.MinZoom, app.cfg.View.MaxZoom)
}

// updateCamera follows window resizes and rebuilds the camera looking down
// the -Z axis onto the plan plane
func (app *App) updateCamera() {
	v := app.Camera.view
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	app.Camera.view = export.ViewAt(v.Center(), v.Zoom, w, h)

	c := v.Center()
	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: float32(c.X), Y: float32(c.Y), Z: 10},
		Target:     rl.Vector3{X: float32(c.X), Y: float32(c.Y), Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       float32(float64(h) / v.Zoom), // visible height in plan units
		Projection: rl.CameraOrthographic,
	}
}

// zoomAt scales the view by factor, keeping the plan point under the
// cursor in place
func (app *App) zoomAt(screen rl.Vector2, factor float64) {
	v := app.Camera.view
	x, y := float64(screen.X), float64(screen.Y)
	anchor := v.ToPlan(x, y)
	zoom := app.clampZoom(v.Zoom * factor)

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	center := geometry.NewVector2(
		anchor.X-(x-float64(w)/2)/zoom,
		anchor.Y+(y-float64(h)/2)/zoom,
	)
	app.Camera.view = export.ViewAt(center, zoom, w, h)
}

// pan moves the view by a mouse delta in pixels
func (app *App) pan(delta rl.Vector2) {
	v := app.Camera.view
	c := v.Center()
	center := geometry.NewVector2(c.X-float64(delta.X)/v.Zoom, c.Y+float64(delta.Y)/v.Zoom)
	app.Camera.view = export.ViewAt(center, v.Zoom, rl.GetScreenWidth(), rl.GetScreenHeight())
}

// mouseWorld returns the point on the plan plane under the cursor
func (app *App) mouseWorld() geometry.Vector3 {
	m := rl.GetMousePosition()
	return app.Camera.view.ToPlan(float64(m.X), float64(m.Y))
}

func (app *App) toScreen(p geometry.Vector3) rl.Vector2 {
	x, y := app.Camera.view.ToScreen(p)
	return rl.Vector2{X: float32(x), Y: float32(y)}
}

func toRL(p geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}
