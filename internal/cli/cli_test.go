package cli

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/keyedit/pkg/errors"
)

const compactLayout = `<?xml version="1.0" encoding="UTF-8"?>
<layout>
  <informations>
    <name>compact</name>
  </informations>
  <keyboard>
    <width>8</width>
    <height>4</height>
    <key><code>9</code><xpos>1</xpos><ypos>1</ypos><label>Esc</label></key>
    <key><code>23</code><xpos>3.5</xpos><ypos>1</ypos><width>3</width><class>tab</class></key>
    <key><code>36</code><xpos>6</xpos><ypos>2</ypos><height>4</height><class>return</class></key>
  </keyboard>
  <extension>
    <name>actions</name>
    <placement>right</placement>
    <keyboard>
      <width>2</width>
      <height>4</height>
      <key><action><command>close</command></action><xpos>1</xpos><ypos>1</ypos></key>
      <key><action><command>config</command></action><xpos>1</xpos><ypos>3</ypos></key>
    </keyboard>
  </extension>
</layout>
`

// writeLayout writes the compact test layout to a temp dir and returns
// its path.
func writeLayout(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compact.xml")
	if err := os.WriteFile(path, []byte(compactLayout), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testCLI() *CLI {
	return New(io.Discard, log.InfoLevel)
}

func TestRootCommandSubcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := []string{"edit", "render", "neighbors", "serve", "info", "cache", "completion"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, name := range want {
		if !slices.Contains(got, name) {
			t.Errorf("missing subcommand %q (have %v)", name, got)
		}
	}

	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[grid]\nx = 5\ny = 5\n\n[snap]\ntolerance = 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c := testCLI()
	c.configPath = path
	cmd := &cobra.Command{}
	if err := c.loadConfig(cmd); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if c.Config.Grid.X != 5 || c.Config.Snap.Tolerance != 4 {
		t.Errorf("config = %+v, want grid 5 and tolerance 4", c.Config)
	}
	if loggerFromContext(cmd.Context()) != c.Logger {
		t.Error("loadConfig should attach the CLI logger to the command context")
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	c := testCLI()
	c.configPath = filepath.Join(t.TempDir(), "nope.toml")
	err := c.loadConfig(&cobra.Command{})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("loadConfig() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "svg", []string{"svg"}},
		{"multiple", "svg,png,json", []string{"svg", "png", "json"}},
		{"spaces and blanks", " svg , ,png ", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLayoutArg(t *testing.T) {
	path := writeLayout(t)
	cmd := &cobra.Command{}

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"valid", []string{path}, false},
		{"none", nil, true},
		{"two", []string{path, path}, true},
		{"empty path", []string{""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := layoutArg(cmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("layoutArg(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestCacheDir(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
		dir, err := cacheDir()
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join("/tmp/xdg-cache", appName); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})

	t.Run("home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CACHE_HOME", "")
		t.Setenv("HOME", home)
		dir, err := cacheDir()
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(home, ".cache", appName); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})
}

func TestCompleteLayoutFiles(t *testing.T) {
	exts, dir := completeLayoutFiles(nil, nil, "")
	if dir != cobra.ShellCompDirectiveFilterFileExt || !slices.Equal(exts, []string{"xml"}) {
		t.Errorf("first arg = %v, %v; want xml filter", exts, dir)
	}
	if _, dir := completeLayoutFiles(nil, []string{"a.xml"}, ""); dir != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("second arg directive = %v, want NoFileComp", dir)
	}
}

func TestCompleteExtensions(t *testing.T) {
	path := writeLayout(t)

	got, _ := completeExtensions(nil, []string{path}, "ac")
	if want := []string{"actions\tright"}; !slices.Equal(got, want) {
		t.Errorf("completeExtensions() = %v, want %v", got, want)
	}
	if got, _ := completeExtensions(nil, []string{path}, "zz"); len(got) != 0 {
		t.Errorf("completeExtensions(zz) = %v, want none", got)
	}
	if _, dir := completeExtensions(nil, []string{"/nonexistent.xml"}, ""); dir != cobra.ShellCompDirectiveError {
		t.Errorf("missing layout directive = %v, want Error", dir)
	}
}
