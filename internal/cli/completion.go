package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mindmap.

To load completions:

Bash:
  $ source <(mindmap completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ mindmap completion bash > /etc/bash_completion.d/mindmap
  # macOS:
  $ mindmap completion bash > $(brew --prefix)/etc/bash_completion.d/mindmap

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ mindmap completion zsh > "${fpath[1]}/_mindmap"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ mindmap completion fish | source

  # To load completions for each session, execute once:
  $ mindmap completion fish > ~/.config/fish/completions/mindmap.fish

PowerShell:
  PS> mindmap completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> mindmap completion powershell > mindmap.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout)
			}
			return nil
		},
	}

	return cmd
}

// completeNodeIDs completes the first argument with the ids of the saved map.
func (c *CLI) completeNodeIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := c.setup(cmd, args); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	s, err := c.openSession(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer s.Close()

	var ids []string
	for _, n := range s.store.Nodes() {
		if strings.HasPrefix(n.ID, toComplete) {
			ids = append(ids, n.ID+"\t"+n.Text)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
