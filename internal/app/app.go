// Package app is the raylib editor window. It draws the plan and turns
// raw mouse and keyboard input into editor events.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/philipparndt/gowall/internal/config"
	"github.com/philipparndt/gowall/internal/editor"
	"github.com/philipparndt/gowall/internal/logging"
	"github.com/philipparndt/gowall/pkg/plan"
	"github.com/philipparndt/gowall/pkg/units"
)

// Options describes what the editor opens
type Options struct {
	// Path is the plan file; empty for an unsaved plan
	Path string
	Plan *plan.Plan
	// SeedIDs lists generated walls whose visible count can be tweaked
	SeedIDs []string
	Config  config.Config
}

type App struct {
	Camera      CameraState
	View        ViewSettings
	Interaction InteractionState
	Document    DocumentState
	FileWatch   FileWatchState
	UI          UIState

	editor *editor.Editor
	cfg    config.Config
	format units.Formatter
	logger *log.Logger
}

// Run opens the editor window and blocks until it is closed or ctx is done
func Run(ctx context.Context, opts Options) error {
	if opts.Plan == nil {
		opts.Plan = plan.New()
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := logging.FromContext(ctx)

	app := &App{
		View: ViewSettings{
			showGrid:   cfg.View.Grid,
			showHints:  true,
			showLabels: true,
		},
		Document: DocumentState{path: opts.Path},
		editor:   editor.New(opts.Plan, logger),
		cfg:      cfg,
		format:   cfg.Labels.Formatter(),
		logger:   logger,
	}
	if opts.Path != "" {
		if data, err := os.ReadFile(opts.Path); err == nil {
			app.Document.lastSaved = data
		}
	}
	app.trackChanges(opts.Plan)
	defer func() { app.Document.unsub() }()

	if len(opts.SeedIDs) > 0 {
		app.editor.SetSeedWalls(opts.SeedIDs)
		app.editor.SetSeedVisible(cfg.Seed.Visible)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), app.windowTitle())
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(rl.KeyNull) // Escape cancels gestures

	// Go Regular covers the label glyphs including feet and inch marks
	chars := []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!@#$%^&*()_+-=[]{}|;:',.<>?/\\`~ \"°±×")
	app.UI.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, 96, chars)
	rl.SetTextureFilter(app.UI.font.Texture, rl.FilterBilinear)
	defer rl.UnloadFont(app.UI.font)

	if opts.Path != "" && cfg.Watch.Enabled {
		if err := app.setupFileWatcher(); err != nil {
			logger.Warn("auto-reload disabled", "err", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	app.fitView()
	logger.Info("editor ready", "walls", opts.Plan.Len(), "file", opts.Path)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if app.FileWatch.needsReload.Swap(false) {
			app.reloadPlan()
		}

		app.updateCamera()
		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(colorBackground)

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showGrid {
			app.drawGrid()
		}
		app.drawWalls()
		app.drawDimensions()
		rl.EndMode3D()

		app.drawHandles()
		if app.View.showLabels {
			app.drawLabels()
		}
		app.drawUI()

		rl.EndDrawing()
	}

	if app.Document.dirty {
		logger.Warn("closing with unsaved changes", "file", app.Document.path)
	}
	return nil
}

// trackChanges marks the document dirty on every plan mutation
func (app *App) trackChanges(p *plan.Plan) {
	if app.Document.unsub != nil {
		app.Document.unsub()
	}
	app.Document.unsub = p.Subscribe(func(plan.Change) {
		app.Document.dirty = true
	})
}

func (app *App) windowTitle() string {
	if app.Document.path == "" {
		return app.cfg.Window.Title
	}
	return fmt.Sprintf("%s - %s", app.cfg.Window.Title, app.Document.path)
}
