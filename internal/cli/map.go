package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mindmap/pkg/errors"
	"github.com/matzehuels/mindmap/pkg/mapio"
	"github.com/matzehuels/mindmap/pkg/mindmap"
)

// =============================================================================
// Show
// =============================================================================

func (c *CLI) showCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the nodes and connections of the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			snap := s.store.Snapshot()
			switch format {
			case "", "table":
				fmt.Fprintln(stdout, nodesTable(snap))
				printConnections(snap.Connections)
				printStats(len(snap.Nodes), len(snap.Connections), s.snaps.Backend().Name())
				return nil
			case string(mapio.JSON), string(mapio.YAML):
				return mapio.Write(snap, stdout, mapio.Format(format))
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (use table, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "table", "output format: table, json, yaml")
	return cmd
}

// =============================================================================
// Nodes
// =============================================================================

func (c *CLI) addCommand() *cobra.Command {
	var parent, text string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a child node",
		Long: `Add a child node under --parent, or under the first node of the map.
Existing children that were never moved by hand are re-spaced around the new one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTextFlag(cmd, text); err != nil {
				return err
			}
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			n, ok := s.store.AddNode(cmd.Context(), parent)
			if !ok {
				return errors.New(errors.ErrCodeNodeNotFound, "parent %q not found", parent)
			}
			if cmd.Flags().Changed("text") {
				s.store.UpdateNode(cmd.Context(), n.ID, mindmap.NodeUpdate{Text: &text})
			}
			printSuccess("Added %s", StyleHighlight.Render(n.ID))
			printDetail("at %s under %s", formatPoint(n.X, n.Y), n.ParentID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "parent node id (default: first node)")
	cmd.Flags().StringVarP(&text, "text", "t", "", "node text")
	return cmd
}

func (c *CLI) orphanCommand() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "orphan",
		Short: "Add an unconnected node next to the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTextFlag(cmd, text); err != nil {
				return err
			}
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			n, ok := s.store.AddOrphanNode(cmd.Context())
			if !ok {
				return errors.New(errors.ErrCodeNodeNotFound, "the map has no root node")
			}
			if cmd.Flags().Changed("text") {
				s.store.UpdateNode(cmd.Context(), n.ID, mindmap.NodeUpdate{Text: &text})
			}
			printSuccess("Added %s", StyleHighlight.Render(n.ID))
			printDetail("at %s", formatPoint(n.X, n.Y))
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "node text")
	return cmd
}

func (c *CLI) updateCommand() *cobra.Command {
	var (
		text, color, icon string
		noIcon            bool
		x, y              float64
		width, height     float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the text, color, icon or position of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := errors.ValidateNodeID(id); err != nil {
				return err
			}

			flags := cmd.Flags()
			var u mindmap.NodeUpdate
			if flags.Changed("text") {
				if err := errors.ValidateText(text); err != nil {
					return err
				}
				u.Text = &text
			}
			if flags.Changed("color") {
				if err := errors.ValidateColor(color); err != nil {
					return err
				}
				u.Color = &color
			}
			if flags.Changed("icon") {
				u.Icon = &icon
			}
			if noIcon {
				empty := ""
				u.Icon = &empty
			}
			if flags.Changed("x") {
				if err := errors.ValidateCoordinate("x", x); err != nil {
					return err
				}
				u.X = &x
			}
			if flags.Changed("y") {
				if err := errors.ValidateCoordinate("y", y); err != nil {
					return err
				}
				u.Y = &y
			}
			if flags.Changed("width") {
				if err := errors.ValidateSize("width", width); err != nil {
					return err
				}
				u.Width = &width
			}
			if flags.Changed("height") {
				if err := errors.ValidateSize("height", height); err != nil {
					return err
				}
				u.Height = &height
			}
			if u == (mindmap.NodeUpdate{}) {
				return errors.New(errors.ErrCodeInvalidInput, "nothing to update")
			}

			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.store.UpdateNode(cmd.Context(), id, u) {
				return errors.New(errors.ErrCodeNodeNotFound, "node %q not found", id)
			}
			printSuccess("Updated %s", StyleHighlight.Render(id))
			return nil
		},
		ValidArgsFunction: c.completeNodeIDs,
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "node text")
	cmd.Flags().StringVarP(&color, "color", "c", "", "fill color (#RGB or #RRGGBB)")
	cmd.Flags().StringVar(&icon, "icon", "", "icon shown before the text")
	cmd.Flags().BoolVar(&noIcon, "no-icon", false, "remove the icon")
	cmd.Flags().Float64Var(&x, "x", 0, "x position (pins the node)")
	cmd.Flags().Float64Var(&y, "y", 0, "y position (pins the node)")
	cmd.Flags().Float64Var(&width, "width", 0, "box width")
	cmd.Flags().Float64Var(&height, "height", 0, "box height")
	cmd.MarkFlagsMutuallyExclusive("icon", "no-icon")
	return cmd
}

func (c *CLI) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a node, its descendants and their connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if id == mindmap.RootID {
				return errors.New(errors.ErrCodeInvalidInput, "the root node cannot be deleted")
			}
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			removed := s.store.DeleteNode(cmd.Context(), id)
			if len(removed) == 0 {
				return errors.New(errors.ErrCodeNodeNotFound, "node %q not found", id)
			}
			printSuccess("Deleted %s", plural(len(removed), "node"))
			for _, r := range removed[1:] {
				printDetail("%s", r)
			}
			return nil
		},
		ValidArgsFunction: c.completeNodeIDs,
	}
}

// =============================================================================
// Connections
// =============================================================================

func (c *CLI) connectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <source> <target>",
		Short: "Connect two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, id := range args {
				if _, ok := s.store.Node(id); !ok {
					return errors.New(errors.ErrCodeNodeNotFound, "node %q not found", id)
				}
			}
			conn, ok := s.store.AddConnection(cmd.Context(), args[0], args[1])
			if !ok {
				printWarning("%s and %s are already connected", args[0], args[1])
				return nil
			}
			printSuccess("Connected %s %s %s", args[0], iconArrow, args[1])
			printDetail("%s", conn.ID)
			return nil
		},
	}
}

func (c *CLI) disconnectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <connection-id>",
		Short: "Remove a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.store.RemoveConnection(cmd.Context(), args[0]) {
				return errors.New(errors.ErrCodeConnectionNotFound, "connection %q not found", args[0])
			}
			printSuccess("Removed %s", args[0])
			return nil
		},
	}
}

// =============================================================================
// Canvas Changes
// =============================================================================

func (c *CLI) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <x> <y>",
		Short: "Move a node as if dragged on the canvas",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "x must be a number")
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "y must be a number")
			}
			if err := errors.ValidateCoordinate("x", x); err != nil {
				return err
			}
			if err := errors.ValidateCoordinate("y", y); err != nil {
				return err
			}
			return c.applyChange(cmd, mindmap.MoveTo(args[0], x, y), "Moved %s to "+formatPoint(x, y))
		},
		ValidArgsFunction: c.completeNodeIDs,
	}
}

func (c *CLI) dropCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drop <id>",
		Short: "Remove a single node, keeping its children and connections",
		Long: `Remove a single node the way the canvas delete key does. Unlike delete,
descendants are kept and connections to the node are left in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == mindmap.RootID {
				return errors.New(errors.ErrCodeInvalidInput, "the root node cannot be removed")
			}
			return c.applyChange(cmd, mindmap.Remove(args[0]), "Dropped %s")
		},
		ValidArgsFunction: c.completeNodeIDs,
	}
}

// applyChange applies one canvas change and reports it with msg, which
// takes the node id.
func (c *CLI) applyChange(cmd *cobra.Command, change mindmap.NodeChange, msg string) error {
	s, err := c.openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if !s.store.ApplyNodeChanges(cmd.Context(), []mindmap.NodeChange{change}) {
		return errors.New(errors.ErrCodeNodeNotFound, "node %q not found", change.ID)
	}
	printSuccess(msg, StyleHighlight.Render(change.ID))
	return nil
}

func (c *CLI) resetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start a new map, discarding the saved one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			s.store.ResetMap(cmd.Context())
			printSuccess("%s", c.translations().NewMap)
			printNextStep("Add a node", appName+" add --text <text>")
			return nil
		},
	}
}

// =============================================================================
// Helpers
// =============================================================================

func validateTextFlag(cmd *cobra.Command, text string) error {
	if !cmd.Flags().Changed("text") {
		return nil
	}
	return errors.ValidateText(text)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
