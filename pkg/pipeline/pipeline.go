// Package pipeline exports keyboard layouts to SVG, PNG and JSON.
//
// The pipeline has two stages:
//
//  1. Load: read and validate a Florence layout document
//  2. Render: build a scene for the chosen keyboard and draw it in each
//     requested format
//
// Rendered artifacts are cached under a hash of the canonical document and
// the render options, so re-exporting an unchanged layout is free.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, "compact.xml", pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"slices"
	"time"

	"github.com/matzehuels/keyedit/pkg/cache"
	"github.com/matzehuels/keyedit/pkg/config"
	"github.com/matzehuels/keyedit/pkg/errors"
	"github.com/matzehuels/keyedit/pkg/render/styles"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatJSON}

// DefaultStyle is the default visual style.
const DefaultStyle = "simple"

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// Options configures a render.
type Options struct {
	Formats   []string `json:"formats"`
	Style     string   `json:"style,omitempty"`
	Scale     float64  `json:"scale,omitempty"`     // device units per layout unit
	PNGScale  float64  `json:"png_scale,omitempty"` // raster factor
	Grid      bool     `json:"grid"`
	Extension string   `json:"extension,omitempty"` // empty renders the main keyboard
	Refresh   bool     `json:"-"`                   // bypass cache reads
}

// OptionsFromConfig returns render options seeded from cfg.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Formats:  slices.Clone(cfg.Render.Formats),
		Style:    cfg.Render.Style,
		Scale:    cfg.Layout.Scale,
		PNGScale: cfg.Render.PNGScale,
		Grid:     cfg.Render.ShowGrid,
	}
}

// Result holds the outputs of Execute.
type Result struct {
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte
	// DocHash identifies the canonical layout document.
	DocHash string
	// CacheHit is set when every artifact came from the cache.
	CacheHit bool
	Stats    Stats
}

// Stats contains execution statistics.
type Stats struct {
	KeyCount   int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is registered.
func ValidateStyle(style string) error {
	if !slices.Contains(styles.Names, style) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid style: %q (must be one of: %v)", style, styles.Names)
	}
	return nil
}

// SetDefaults fills unset fields. It is idempotent.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale <= 0 {
		o.Scale = config.DefaultScale
	}
	if o.PNGScale <= 0 {
		o.PNGScale = config.DefaultPNGScale
	}
}

// Validate sets defaults and checks every field.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// ArtifactKeyOpts returns cache key options for one format. Options that
// do not affect a format are left out so that, for example, changing the
// PNG scale keeps cached SVGs.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:    format,
		Scale:     o.Scale,
		Extension: o.Extension,
	}
	switch format {
	case FormatSVG:
		k.Style, k.Grid = o.Style, o.Grid
	case FormatPNG:
		k.Style, k.Grid, k.PNGScale = o.Style, o.Grid, o.PNGScale
	}
	return k
}

func (o *Options) String() string {
	return fmt.Sprintf("formats=%v style=%s scale=%g grid=%v", o.Formats, o.Style, o.Scale, o.Grid)
}
