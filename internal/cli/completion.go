package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionScripts maps each supported shell to its script generator.
var completionScripts = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       bashCompletion,
	"fish":       fishCompletion,
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
	"zsh":        (*cobra.Command).GenZshCompletion,
}

func bashCompletion(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) }

func fishCompletion(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) }

func (c *CLI) completionCommand() *cobra.Command {
	shells := slices.Sorted(maps.Keys(completionScripts))
	return &cobra.Command{
		Use:   fmt.Sprintf("completion [%s]", strings.Join(shells, "|")),
		Short: "Print a shell completion script",
		Long: `Print a completion script for the given shell to stdout. For example:

  source <(amidakuji completion bash)
  amidakuji completion zsh > "${fpath[1]}/_amidakuji"
  amidakuji completion fish | source
  amidakuji completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionScripts[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
