package app

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/gowall/pkg/planfile"
	"github.com/philipparndt/gowall/pkg/watcher"
)

const statusDuration = 3 * time.Second

// setupFileWatcher reloads the plan when its file changes on disk
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(app.cfg.Watch.Debounce, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch([]string{app.Document.path}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.logger.Info("watching plan file", "file", app.Document.path)

	return nil
}

// reloadPlan replaces the edited plan with the file content. Must be
// called on the main thread.
func (app *App) reloadPlan() {
	data, err := os.ReadFile(app.Document.path)
	if err != nil {
		app.logger.Warn("reload failed", "err", err)
		return
	}
	// our own save
	if bytes.Equal(data, app.Document.lastSaved) {
		return
	}

	start := time.Now()
	p, err := planfile.Unmarshal(data)
	if err != nil {
		app.logger.Warn("reload failed", "file", app.Document.path, "err", err)
		app.setStatus("Reload failed: " + err.Error())
		return
	}

	if app.Document.dirty {
		app.logger.Warn("discarding unsaved changes", "file", app.Document.path)
	}
	app.editor.SetPlan(p)
	app.UI.inputWallID = ""
	app.trackChanges(p)
	app.Document.dirty = false
	app.Document.lastSaved = data

	app.logger.Info("plan reloaded", "walls", p.Len(), "elapsed", time.Since(start).Round(time.Millisecond))
	app.setStatus("Reloaded from disk")
}

// save writes the plan to its file
func (app *App) save() {
	if app.Document.path == "" {
		app.setStatus("No plan file, start with: gowall edit <file>")
		return
	}

	data, err := planfile.Marshal(app.editor.Plan())
	if err != nil {
		app.logger.Error("save failed", "err", err)
		app.setStatus("Save failed")
		return
	}
	if err := planfile.WriteFile(app.Document.path, data); err != nil {
		app.logger.Error("save failed", "err", err)
		app.setStatus("Save failed")
		return
	}

	app.Document.lastSaved = data
	app.Document.dirty = false
	app.logger.Info("plan saved", "file", app.Document.path, "walls", app.editor.Plan().Len())
	app.setStatus("Saved " + app.Document.path)
}

func (app *App) setStatus(msg string) {
	app.UI.status = msg
	app.UI.statusUntil = time.Now().Add(statusDuration)
}
