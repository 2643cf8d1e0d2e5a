// Package config holds the editor configuration.
//
// A Config is an explicit value built once at startup and handed to the
// scene, the terminal host and the export pipeline. Nothing in the editor
// reads process-wide mutable settings.
//
// Configuration is read from TOML:
//
//	[grid]
//	x = 30
//	y = 30
//
//	[snap]
//	tolerance = 10
//	modifier = "alt"
//	toggle = "ctrl"
//
//	[layout]
//	scale = 30
//
//	[terminal]
//	cell_width = 10
//	cell_height = 20
//
//	[render]
//	formats = ["svg"]
//	style = "simple"
//	png_scale = 2.0
//	show_grid = true
//
//	[server]
//	addr = ":8080"
//
// Missing sections keep the values from [Default].
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/keyedit/pkg/errors"
)

const (
	// DefaultGrid is the grid spacing on both axes, one layout unit.
	DefaultGrid = 30.0

	// DefaultTolerance is the snapping distance in device units.
	DefaultTolerance = 10.0

	// DefaultScale converts layout units to device units.
	DefaultScale = 30.0

	// DefaultCellWidth is the device width of one terminal column.
	DefaultCellWidth = 10.0

	// DefaultCellHeight is the device height of one terminal row.
	DefaultCellHeight = 20.0

	// DefaultPNGScale is the rasterisation factor for PNG output.
	DefaultPNGScale = 2.0

	// DefaultAddr is the listen address of the preview server.
	DefaultAddr = ":8080"
)

// Modifier names accepted for the snap and toggle keys.
const (
	ModAlt   = "alt"
	ModCtrl  = "ctrl"
	ModShift = "shift"
)

var validModifiers = map[string]bool{ModAlt: true, ModCtrl: true, ModShift: true}

// Config is the complete editor configuration.
type Config struct {
	Grid     GridConfig     `toml:"grid"`
	Canvas   CanvasConfig   `toml:"canvas"`
	Snap     SnapConfig     `toml:"snap"`
	Layout   LayoutConfig   `toml:"layout"`
	Terminal TerminalConfig `toml:"terminal"`
	Render   RenderConfig   `toml:"render"`
	Server   ServerConfig   `toml:"server"`
}

// GridConfig sets the snapping grid. Zero disables an axis.
type GridConfig struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// CanvasConfig overrides the canvas extents in device units.
// Zero keeps the size declared by the layout document.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// SnapConfig controls snapping during drags.
type SnapConfig struct {
	Tolerance float64 `toml:"tolerance"`
	Modifier  string  `toml:"modifier"`
	Toggle    string  `toml:"toggle"`
}

// LayoutConfig controls the conversion between layout and device units.
type LayoutConfig struct {
	Scale float64 `toml:"scale"`
}

// TerminalConfig maps terminal cells to device units.
type TerminalConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// RenderConfig sets export defaults.
type RenderConfig struct {
	Formats  []string `toml:"formats"`
	Style    string   `toml:"style"`
	PNGScale float64  `toml:"png_scale"`
	ShowGrid bool     `toml:"show_grid"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{X: DefaultGrid, Y: DefaultGrid},
		Snap: SnapConfig{
			Tolerance: DefaultTolerance,
			Modifier:  ModAlt,
			Toggle:    ModCtrl,
		},
		Layout: LayoutConfig{Scale: DefaultScale},
		Terminal: TerminalConfig{
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
		},
		Render: RenderConfig{
			Formats:  []string{"svg"},
			Style:    "simple",
			PNGScale: DefaultPNGScale,
			ShowGrid: true,
		},
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

// Path returns the default config file location
// ($XDG_CONFIG_HOME/keyedit/config.toml or ~/.config/keyedit/config.toml).
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "keyedit", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "keyedit", "config.toml"), nil
}

// Load reads the TOML file at path on top of [Default].
// An empty path loads the default location and tolerates its absence;
// an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode parses TOML data on top of [Default].
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	return cfg, cfg.Validate()
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Grid.X < 0 || c.Grid.Y < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid spacing cannot be negative")
	}
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size cannot be negative")
	}
	if c.Snap.Tolerance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap tolerance cannot be negative")
	}
	if !validModifiers[c.Snap.Modifier] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid snap modifier: %q (must be alt, ctrl or shift)", c.Snap.Modifier)
	}
	if !validModifiers[c.Snap.Toggle] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid toggle modifier: %q (must be alt, ctrl or shift)", c.Snap.Toggle)
	}
	if c.Snap.Modifier == c.Snap.Toggle {
		return errors.New(errors.ErrCodeInvalidConfig, "snap and toggle modifiers must differ")
	}
	if c.Layout.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout scale must be positive")
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "terminal cell size must be positive")
	}
	if c.Render.PNGScale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "png scale must be positive")
	}
	return nil
}
