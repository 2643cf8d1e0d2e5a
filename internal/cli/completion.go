package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/keyedit/pkg/layout"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for keyedit.

Bash:
  $ source <(keyedit completion bash)

Zsh:
  $ keyedit completion zsh > "${fpath[1]}/_keyedit"

Fish:
  $ keyedit completion fish | source

PowerShell:
  PS> keyedit completion powershell | Out-String | Invoke-Expression

Layout arguments complete to .xml files and --extension completes to the
extensions of the layout named on the command line.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeLayoutFiles completes the single layout argument to XML files.
func completeLayoutFiles(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"xml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeExtensions completes --extension to the extension names of the
// layout given as the first argument.
func completeExtensions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	l, err := layout.ReadFile(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, e := range l.Extensions {
		if strings.HasPrefix(e.Name, toComplete) {
			names = append(names, e.Name+"\t"+string(e.Placement))
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
