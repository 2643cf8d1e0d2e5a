package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/keyedit/pkg/errors"
	"github.com/matzehuels/keyedit/pkg/render/nodelink"
)

type neighborsOpts struct {
	output    string
	extension string
	tolerance float64
	pinned    bool
	detailed  bool
}

// neighborsCommand creates the neighbors command.
func (c *CLI) neighborsCommand() *cobra.Command {
	var opts neighborsOpts

	cmd := &cobra.Command{
		Use:   "neighbors <layout.xml>",
		Short: "Draw which keys touch each other",
		Long: `Neighbors builds the adjacency graph of a keyboard: two keys are linked when
their facing edges are within the snapping tolerance and they overlap on the
other axis. Side-by-side keys get solid edges, stacked keys dashed ones.

The output format follows the -o extension: .svg renders with Graphviz,
.dot writes the source. Without -o the DOT source goes to stdout.`,
		Args:              layoutArg,
		ValidArgsFunction: completeLayoutFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNeighbors(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.svg or .dot)")
	cmd.Flags().StringVarP(&opts.extension, "extension", "e", "", "use the named extension")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 0, "edge distance in device units (default from config)")
	cmd.Flags().BoolVar(&opts.pinned, "pinned", false, "place nodes at their key positions")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show key geometry in node labels")

	cmd.RegisterFlagCompletionFunc("extension", completeExtensions)
	return cmd
}

func (c *CLI) runNeighbors(ctx context.Context, input string, opts neighborsOpts) error {
	logger := loggerFromContext(ctx)

	l, err := readLayout(input, logger)
	if err != nil {
		return err
	}
	kb, ok := l.Target(opts.extension)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "layout has no extension %q", opts.extension)
	}

	tol := opts.tolerance
	if tol <= 0 {
		tol = c.Config.Snap.Tolerance
	}
	g := nodelink.Adjacency(kb.Objects(c.Config.Layout.Scale), tol)
	logger.Info("computed adjacency", "keys", len(g.Nodes), "edges", len(g.Edges), "tolerance", tol)

	isolated := 0
	for _, d := range g.Degree() {
		if d == 0 {
			isolated++
		}
	}
	if isolated > 0 {
		printWarning("%d key(s) have no neighbour", isolated)
	}

	gopts := nodelink.Options{Pinned: opts.pinned, Detailed: opts.detailed}
	dot := nodelink.ToDOT(g, gopts)

	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case "":
		if opts.output != "" {
			return errors.New(errors.ErrCodeInvalidFormat, "output %q has no extension (want .svg or .dot)", opts.output)
		}
		fmt.Fprint(os.Stdout, dot)
		return nil
	case ".dot", ".gv":
		if err := writeFile(opts.output, []byte(dot)); err != nil {
			return err
		}
	case ".svg":
		svg, err := nodelink.RenderSVG(ctx, dot, gopts)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render adjacency graph")
		}
		if err := writeFile(opts.output, svg); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported output %q (want .svg or .dot)", ext)
	}

	printSuccess("Wrote adjacency graph")
	printFile(opts.output)
	return nil
}
