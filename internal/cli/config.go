package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgraph/pkg/errors"
)

// saveCommand rewrites the stored configuration from the current state.
func (c *CLI) saveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the current configuration to storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withWorkspaceMode(ctx, loadLenient, func(w *workspace) error {
				err := w.sess.Save(ctx)
				if errors.IsEmptyState(err) {
					printWarning(msgNoDependencies)
					return nil
				}
				if err != nil {
					return err
				}
				printSuccess("Saved to %s", StyleHighlight.Render(w.settings.Storage.backendName()))
				printStats(len(w.sess.Cards()), edgeTotal(w.sess.Dependencies()))
				return nil
			})
		},
	}
}

// exportCommand prints the configuration as compact JSON.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the configuration as JSON",
		Long: `Print the configuration as a single JSON document with the keys
dependencies, selectedLists and listColors. The output can be pasted into
"cardgraph import" on another machine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				s, err := w.sess.Export()
				if err != nil {
					return err
				}
				return writeOutput(cmd, output, []byte(s+"\n"))
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// importCommand replaces the session state with an exported configuration
// and saves it. A malformed stored configuration does not block it.
func (c *CLI) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the configuration with exported JSON",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return c.withWorkspaceMode(ctx, loadLenient, func(w *workspace) error {
				if err := w.sess.Import(ctx, string(data)); err != nil {
					return err
				}
				if err := commit(ctx, w.sess); err != nil {
					return err
				}
				printSuccess("Imported configuration")
				printStats(len(w.sess.Cards()), edgeTotal(w.sess.Dependencies()))
				return nil
			})
		},
	}
}

// readInput reads path, or the command's stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "configuration file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func edgeTotal(deps map[string][]string) int {
	n := 0
	for _, children := range deps {
		n += len(children)
	}
	return n
}
