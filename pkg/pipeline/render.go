package pipeline

import (
	"bytes"

	"github.com/matzehuels/keyedit/pkg/errors"
	"github.com/matzehuels/keyedit/pkg/layout"
	"github.com/matzehuels/keyedit/pkg/render/sink"
	"github.com/matzehuels/keyedit/pkg/render/styles"
	"github.com/matzehuels/keyedit/pkg/scene"
)

// RenderFormats draws the target keyboard of l in every requested format
// without touching any cache. opts must already be validated.
func RenderFormats(l *layout.Layout, opts Options) (map[string][]byte, error) {
	kb, ok := l.Target(opts.Extension)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "layout has no extension %q", opts.Extension)
	}
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, err
	}

	grid := opts.Scale
	s := kb.Scene(opts.Scale, scene.WithGrid(grid, grid))

	name := l.Name
	if opts.Extension != "" {
		name = opts.Extension
	}

	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			out[format] = sink.RenderSVG(s, sink.WithStyle(style), sink.WithGrid(opts.Grid))
		case FormatPNG:
			data, err := sink.RenderPNG(s,
				sink.WithPNGStyle(style),
				sink.WithPNGGrid(opts.Grid),
				sink.WithScale(opts.PNGScale))
			if err != nil {
				return nil, err
			}
			out[format] = data
		case FormatJSON:
			var buf bytes.Buffer
			if err := kb.WriteJSON(&buf, name, opts.Scale); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
			}
			out[format] = buf.Bytes()
		default:
			return nil, ValidateFormat(format)
		}
	}
	return out, nil
}
