package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// editCommand opens the interactive editor.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the map interactively",
		Long: `Open the map in a terminal editor. Changes are saved as they are made.

Keys:
  ↑/↓ k/j      select node
  a            add child          o   add orphan
  e, ⏎         edit text          m   node menu
  i            icon picker        c   connect (press on source, then target)
  x, del       remove node        H/J/K/L  move node
  +/-, 0, f    zoom in/out, reset, fit
  p, P         export PNG / PDF   l   switch language
  n            new map            q   quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			m := newEditorModel(ctx, s.store, c.cfg.LanguageTag(), c.cfg.ExportOptions())
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return err
			}
			printInfo("Saved to %s", c.storageLocation())
			printStats(s.store.Len(), len(s.store.Connections()), s.snaps.Backend().Name())
			return nil
		},
	}
}
