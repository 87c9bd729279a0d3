package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ontokit. Snapshot arguments complete
to .json, .yaml and .yml files.

To load completions:

Bash:
  $ source <(ontokit completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ ontokit completion bash > /etc/bash_completion.d/ontokit
  # macOS:
  $ ontokit completion bash > $(brew --prefix)/etc/bash_completion.d/ontokit

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ ontokit completion zsh > "${fpath[1]}/_ontokit"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ ontokit completion fish | source

  # To load completions for each session, execute once:
  $ ontokit completion fish > ~/.config/fish/completions/ontokit.fish

PowerShell:
  PS> ontokit completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> ontokit completion powershell > ontokit.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}

// completeSnapshots completes the first positional argument to snapshot
// files.
func completeSnapshots(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}
