package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/keyedit/pkg/errors"
)

// editCommand creates the interactive edit command.
func (c *CLI) editCommand() *cobra.Command {
	var extension string

	cmd := &cobra.Command{
		Use:   "edit <layout.xml>",
		Short: "Edit a layout interactively in the terminal",
		Long: `Edit opens the layout in a full-screen terminal editor.

Keys are moved by dragging them with the left mouse button and resized by
dragging near their edges or corners. Holding the snap modifier (alt by
default) snaps the dragged keys to the grid, to neighbouring keys and to the
keyboard edges. Holding the toggle modifier (ctrl by default) adds keys to
or removes them from the selection. Dragging on empty space selects every
key inside the box.`,
		Example: `  keyedit edit compact.xml
  keyedit edit compact.xml --extension actions`,
		Args:              layoutArg,
		ValidArgsFunction: completeLayoutFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args[0], extension)
		},
	}

	cmd.Flags().StringVarP(&extension, "extension", "e", "", "edit the named extension instead of the main keyboard")
	cmd.RegisterFlagCompletionFunc("extension", completeExtensions)
	return cmd
}

func (c *CLI) runEdit(ctx context.Context, path, extension string) error {
	logger := loggerFromContext(ctx)

	l, err := readLayout(path, logger)
	if err != nil {
		return err
	}
	sceneLog, closeLog, err := editorLogger(logger)
	if err != nil {
		return err
	}
	defer closeLog()

	e, err := newEditor(c.Config, l, path, extension, sceneLog)
	if err != nil {
		return err
	}

	p := tea.NewProgram(e,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "run editor")
	}

	if ed, ok := final.(*editor); ok && ed.unsaved {
		printWarning("discarded unsaved changes to %s", path)
	}
	return nil
}

// editorLogFile is the debug log of the editor inside the cache directory.
const editorLogFile = "edit.log"

// editorLogger returns the logger for scene events while the editor owns
// the terminal. Debug output goes to a file in the cache directory; other
// levels are discarded.
func editorLogger(base *log.Logger) (*log.Logger, func() error, error) {
	nop := func() error { return nil }
	if base.GetLevel() > log.DebugLevel {
		return newLogger(io.Discard, base.GetLevel()), nop, nil
	}

	dir, err := cacheDir()
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "resolve cache directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
	}
	path := filepath.Join(dir, editorLogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	base.Debug("editor log", "path", path)
	return newLogger(f, log.DebugLevel), f.Close, nil
}
