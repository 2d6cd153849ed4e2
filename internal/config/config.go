// Package config loads editor and CLI settings from a TOML file.
//
// A file only needs to name the values it changes; everything else keeps
// the value from Default:
//
//	[window]
//	width = 1600
//
//	[labels]
//	use_feet = false
//	min = 1.0
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/philipparndt/gowall/pkg/plan"
	"github.com/philipparndt/gowall/pkg/units"
)

// Window holds the editor window settings
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
	Title  string `toml:"title"`
}

// View holds camera and grid settings
type View struct {
	// Zoom is the initial scale in pixels per plan unit
	Zoom    float64 `toml:"zoom"`
	MinZoom float64 `toml:"min_zoom"`
	MaxZoom float64 `toml:"max_zoom"`
	Grid    bool    `toml:"grid"`
	// GridSpacing is the distance between grid lines in plan units
	GridSpacing float64 `toml:"grid_spacing"`
	// PickTolerance is the hit-test radius in pixels
	PickTolerance float64 `toml:"pick_tolerance"`
}

// Labels holds dimension label settings
type Labels struct {
	plan.LabelScaleOptions
	FontSize  float64 `toml:"font_size"`
	UseFeet   bool    `toml:"use_feet"`
	Precision int     `toml:"precision"`
	// UnitScale converts plan units to inches
	UnitScale float64 `toml:"unit_scale"`
}

// Formatter returns the length formatter described by the label settings
func (l Labels) Formatter() units.Formatter {
	return units.Formatter{Scale: l.UnitScale, Precision: l.Precision, UseFeet: l.UseFeet}
}

// Seed holds the random plan generator settings
type Seed struct {
	Count int    `toml:"count"`
	Seed  uint64 `toml:"seed"`
	// Visible is the number of seed walls shown initially
	Visible int `toml:"visible"`
}

// Watch holds plan file reload settings
type Watch struct {
	Enabled  bool          `toml:"enabled"`
	Debounce time.Duration `toml:"debounce"`
}

// Config is the complete configuration
type Config struct {
	Window Window `toml:"window"`
	View   View   `toml:"view"`
	Labels Labels `toml:"labels"`
	Seed   Seed   `toml:"seed"`
	Watch  Watch  `toml:"watch"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 800, FPS: 60, Title: "gowall"},
		View: View{
			Zoom:          50,
			MinZoom:       5,
			MaxZoom:       500,
			Grid:          true,
			GridSpacing:   1,
			PickTolerance: 8,
		},
		Labels: Labels{
			LabelScaleOptions: plan.DefaultLabelScale,
			FontSize:          12,
			UseFeet:           true,
			Precision:         units.DefaultPrecision,
			UnitScale:         1,
		},
		Seed:  Seed{Count: 200, Seed: 1, Visible: 200},
		Watch: Watch{Enabled: true, Debounce: 200 * time.Millisecond},
	}
}

// DefaultPath returns the per-user config location, e.g.
// ~/.config/gowall/config.toml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gowall", "config.toml")
}

// Load overlays the TOML file at path onto Default. An empty path reads
// DefaultPath, where a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML text onto cfg and validates the result
func Decode(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks value ranges
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.View.MinZoom <= 0 || c.View.MaxZoom < c.View.MinZoom:
		return fmt.Errorf("invalid zoom range [%v, %v]", c.View.MinZoom, c.View.MaxZoom)
	case c.View.Zoom < c.View.MinZoom || c.View.Zoom > c.View.MaxZoom:
		return fmt.Errorf("zoom %v outside [%v, %v]", c.View.Zoom, c.View.MinZoom, c.View.MaxZoom)
	case c.Labels.Min > c.Labels.Max:
		return fmt.Errorf("label scale min %v exceeds max %v", c.Labels.Min, c.Labels.Max)
	case c.Labels.Precision <= 0:
		return fmt.Errorf("label precision must be positive, got %d", c.Labels.Precision)
	case c.Seed.Count < 0 || c.Seed.Visible < 0:
		return fmt.Errorf("seed counts must not be negative")
	case c.Watch.Debounce < 0:
		return fmt.Errorf("watch debounce must not be negative")
	}
	return nil
}
