package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mindmap/pkg/config"
	"github.com/matzehuels/mindmap/pkg/storage"
)

// storageCommand inspects and clears the saved map.
func (c *CLI) storageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect or clear the saved map",
	}

	cmd.AddCommand(c.storagePathCommand())
	cmd.AddCommand(c.storageInfoCommand())
	cmd.AddCommand(c.storageClearCommand())

	return cmd
}

// storagePathCommand prints where the map is kept.
func (c *CLI) storagePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the saved map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, c.storageLocation())
			return nil
		},
	}
}

func (c *CLI) storageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the storage and config settings in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			configPath := c.configPath
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			printKeyValue("Config", configPath)
			printKeyValue("Backend", s.snaps.Backend().Name())
			printKeyValue("Location", c.storageLocation())
			printKeyValue("Key", s.snaps.Key())
			printKeyValue("Compress", fmt.Sprint(c.cfg.Storage.Compress))
			printKeyValue("Language", string(c.cfg.LanguageTag()))
			printStats(s.store.Len(), len(s.store.Connections()), s.snaps.Backend().Name())
			return nil
		},
	}
}

// storageClearCommand deletes the saved map without opening it.
func (c *CLI) storageClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := storage.Open(cmd.Context(), c.cfg.StorageOptions())
			if err != nil {
				return err
			}
			snaps := storage.NewSnapshotStore(backend, c.cfg.SnapshotOptions()...)
			defer snaps.Close()

			if err := snaps.Clear(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Cleared saved map")
			printDetail("%s", c.storageLocation())
			return nil
		},
	}
}

// storageLocation describes where the configured backend keeps the map.
func (c *CLI) storageLocation() string {
	return storage.Location(c.cfg.StorageOptions(), c.cfg.Storage.Key)
}
