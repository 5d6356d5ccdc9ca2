package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgraph/pkg/buildinfo"
	"github.com/matzehuels/cardgraph/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cardgraph"

	// envBoard and envSettings override the --board and --settings defaults.
	envBoard    = "CARDGRAPH_BOARD"
	envSettings = "CARDGRAPH_SETTINGS"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	boardPath    string
	settingsPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Cardgraph tracks dependencies between kanban cards",
		Long: `Cardgraph records "depends-on" relationships between the cards of a kanban
board, filters them by list, and renders the result as a graph.

The board itself is read from a JSON document written by a scraper
(--board or CARDGRAPH_BOARD). Dependencies, selected lists and list colors
are saved to the storage backend configured in the settings file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := &logHooks{logger: c.Logger}
			observability.SetSessionHooks(hooks)
			observability.SetStorageHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.boardPath, "board", "b", os.Getenv(envBoard), "board document written by the scraper (env "+envBoard+")")
	root.PersistentFlags().StringVar(&c.settingsPath, "settings", os.Getenv(envSettings), "settings file (env "+envSettings+")")
	_ = root.MarkPersistentFlagFilename("board", "json")
	_ = root.MarkPersistentFlagFilename("settings", "toml")

	root.AddCommand(c.depsCommand())
	root.AddCommand(c.listsCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.saveCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.settingsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
