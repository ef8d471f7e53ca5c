package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mindmap/pkg/mapio"
)

// dataCommand moves maps in and out of JSON and YAML files.
func (c *CLI) dataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Import or export the map as a JSON or YAML data file",
	}

	cmd.AddCommand(c.dataExportCommand())
	cmd.AddCommand(c.dataImportCommand())

	return cmd
}

func (c *CLI) dataExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the map to a .json, .yaml or .yml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			snap := s.store.Snapshot()
			if err := mapio.Export(snap, args[0]); err != nil {
				return err
			}
			printSuccess("Wrote %s", plural(len(snap.Nodes), "node"))
			printFile(args[0])
			return nil
		},
	}
}

func (c *CLI) dataImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the map with the contents of a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))
			snap, err := mapio.Import(args[0])
			if err != nil {
				return err
			}
			prog.done("Read " + args[0])

			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.store.Replace(cmd.Context(), snap); err != nil {
				return err
			}
			printSuccess("Imported %s", plural(len(snap.Nodes), "node"))
			printStats(len(snap.Nodes), len(snap.Connections), s.snaps.Backend().Name())
			return nil
		},
	}
}
