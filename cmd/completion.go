package cmd

import (
	"strings"

	"github.com/kernel/chat-toolkit/internal/sites"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for toolkit.

To load completions:

Bash:
  $ source <(toolkit completion bash)

  # To load completions for each session, execute once:
  $ toolkit completion bash > /etc/bash_completion.d/toolkit

Zsh:
  # If shell completion is not already enabled in your environment,
  # enable it once with:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ toolkit completion zsh > "${fpath[1]}/_toolkit"

Fish:
  $ toolkit completion fish > ~/.config/fish/completions/toolkit.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// completeSiteIDs completes --site values with the registered site IDs.
func completeSiteIDs(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ids := lo.Filter(sites.IDs(), func(id string, _ int) bool {
		return strings.HasPrefix(id, strings.ToLower(toComplete))
	})
	return ids, cobra.ShellCompDirectiveNoFileComp
}
