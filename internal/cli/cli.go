package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mindmap/pkg/buildinfo"
	"github.com/matzehuels/mindmap/pkg/config"
	"github.com/matzehuels/mindmap/pkg/errors"
	"github.com/matzehuels/mindmap/pkg/i18n"
	"github.com/matzehuels/mindmap/pkg/mindmap"
	"github.com/matzehuels/mindmap/pkg/storage"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "mindmap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// stdout receives command output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	lang       string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Mindmap edits mind maps from the terminal",
		Long: `Mindmap keeps a mind map of connected idea nodes, saves it after every change,
and exports it as PNG, PDF, SVG or Graphviz DOT.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&c.lang, "lang", "", "label language: en or pt")

	// Map editing
	root.AddCommand(c.showCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.orphanCommand())
	root.AddCommand(c.updateCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.connectCommand())
	root.AddCommand(c.disconnectCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.dropCommand())
	root.AddCommand(c.resetCommand())
	root.AddCommand(c.editCommand())

	// Files and storage
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.dataCommand())
	root.AddCommand(c.storageCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and attaches the logger to the command
// context. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.lang != "" {
		lang, err := i18n.Parse(c.lang)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLanguage, err, "--lang")
		}
		cfg.Language = string(lang)
	}
	c.cfg = cfg

	if c.Logger.GetLevel() <= log.DebugLevel {
		registerLogHooks(c.Logger)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// translations returns the labels for the configured language.
func (c *CLI) translations() i18n.Translations {
	return i18n.For(c.cfg.LanguageTag())
}

// =============================================================================
// Session - Opened Store
// =============================================================================

// session is a loaded mind map together with the storage behind it.
type session struct {
	store *mindmap.Store
	snaps *storage.SnapshotStore
}

// openSession opens the configured backend and loads the saved map.
func (c *CLI) openSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	backend, err := storage.Open(ctx, c.cfg.StorageOptions())
	if err != nil {
		return nil, err
	}
	snaps := storage.NewSnapshotStore(backend, c.cfg.SnapshotOptions()...)
	store := mindmap.Open(ctx, snaps,
		mindmap.WithLogger(c.Logger),
		mindmap.WithTranslations(c.translations()),
	)
	c.Logger.Debug("map loaded", "backend", backend.Name(), "key", snaps.Key(), "nodes", store.Len())
	return &session{store: store, snaps: snaps}, nil
}

// Close releases the storage backend.
func (s *session) Close() error {
	return s.snaps.Close()
}
