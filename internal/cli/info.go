package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/keyedit/pkg/errors"
	"github.com/matzehuels/keyedit/pkg/layout"
)

// infoCommand creates the info command.
func (c *CLI) infoCommand() *cobra.Command {
	var extension string

	cmd := &cobra.Command{
		Use:               "info <layout.xml>",
		Short:             "List the keys of a layout",
		Args:              layoutArg,
		ValidArgsFunction: completeLayoutFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), os.Stdout, args[0], extension)
		},
	}
	cmd.Flags().StringVarP(&extension, "extension", "e", "", "list the named extension")
	cmd.RegisterFlagCompletionFunc("extension", completeExtensions)
	return cmd
}

func runInfo(ctx context.Context, w io.Writer, path, extension string) error {
	l, err := readLayout(path, loggerFromContext(ctx))
	if err != nil {
		return err
	}
	kb, ok := l.Target(extension)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "layout has no extension %q", extension)
	}

	fmt.Fprintln(w, StyleTitle.Render(l.Name))
	fmt.Fprintln(w, summaryLine(l))
	fmt.Fprintln(w)
	fmt.Fprintln(w, keyTable(kb).Render())
	return nil
}

func summaryLine(l *layout.Layout) string {
	s := StyleDim.Render(fmt.Sprintf("%gx%g units · %d keys", l.Keyboard.Width, l.Keyboard.Height, len(l.Keyboard.Keys)))
	if l.Version != "" {
		s += StyleDim.Render(" · florence " + l.Version)
	}
	for _, e := range l.Extensions {
		s += "\n" + StyleDim.Render(fmt.Sprintf("  %s %s (%s, %d keys)", iconArrow, e.Name, e.Placement, len(e.Keyboard.Keys)))
	}
	return s
}

// keyTable lists keys in document order. Action keys are highlighted.
func keyTable(kb *layout.Keyboard) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	rows := make([][]string, 0, len(kb.Keys))
	for i, k := range kb.Keys {
		binding := "code " + k.Binding.String()
		if _, ok := k.Binding.(layout.Action); ok {
			binding = "action " + k.Binding.String()
		}
		class := k.Class
		if class == "" {
			class = "—"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			k.DisplayLabel(),
			binding,
			num(k.XPos) + "," + num(k.YPos),
			num(k.Width) + "x" + num(k.Height),
			class,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Label", "Binding", "Pos", "Size", "Class").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				return base.Foreground(colorDim)
			}
			if row < len(kb.Keys) {
				if _, ok := kb.Keys[row].Binding.(layout.Action); ok && col == 2 {
					return base.Foreground(colorCyan)
				}
			}
			return base
		})
}
