package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/keyedit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file (single format) or base path
	formats   string  // comma-separated formats
	style     string  // style name
	extension string  // extension to render instead of the main keyboard
	scale     float64 // device units per layout unit
	pngScale  float64 // raster factor
	noGrid    bool
	noCache   bool
	refresh   bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <layout.xml>",
		Short: "Export a layout to SVG, PNG or JSON",
		Long: `Render draws the main keyboard (or one extension) of a Florence layout.

Formats default to the [render] section of the config file. With one format
and -o the output is written to that file; otherwise files are named after
the layout (or the -o base path) with the format as extension.`,
		Args:              layoutArg,
		ValidArgsFunction: completeLayoutFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple, night")
	cmd.Flags().StringVarP(&opts.extension, "extension", "e", "", "render the named extension")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "device units per layout unit")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", 0, "PNG resolution factor")
	cmd.Flags().BoolVar(&opts.noGrid, "no-grid", false, "hide the grid")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")

	cmd.RegisterFlagCompletionFunc("extension", completeExtensions)
	return cmd
}

// pipelineOptions merges flags over the configuration.
func (c *CLI) pipelineOptions(opts renderOpts) pipeline.Options {
	p := pipeline.OptionsFromConfig(c.Config)
	if f := parseFormats(opts.formats); len(f) > 0 {
		p.Formats = f
	}
	if opts.style != "" {
		p.Style = opts.style
	}
	if opts.scale > 0 {
		p.Scale = opts.scale
	}
	if opts.pngScale > 0 {
		p.PNGScale = opts.pngScale
	}
	if opts.noGrid {
		p.Grid = false
	}
	p.Extension = opts.extension
	p.Refresh = opts.refresh
	return p
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	popts := c.pipelineOptions(opts)
	if err := popts.Validate(); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache, "")
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Rendering "+filepath.Base(input)+"...")
	spinner.Start()
	result, err := runner.Execute(ctx, input, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	paths := outputPaths(opts.output, input, popts.Extension, popts.Formats)
	for _, format := range popts.Formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(popts.Formats)))

	printSuccess("Rendered %s", filepath.Base(input))
	printStats(result.Stats.KeyCount, len(popts.Formats), result.CacheHit)
	for _, format := range popts.Formats {
		printFile(paths[format])
	}
	printNextStep("Edit", appName+" edit "+input)
	return nil
}

// outputPaths maps each format to its output file. A single format with
// an explicit output uses it verbatim.
func outputPaths(output, input, extension string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	if extension != "" {
		base += "_" + extension
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path. An empty output strips the
// extension from input; a known format extension is stripped from output.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeFile writes data, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
