package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgraph/pkg/errors"
	"github.com/matzehuels/cardgraph/pkg/session"
)

// depsCommand groups the dependency subcommands.
func (c *CLI) depsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Add, remove and list card dependencies",
	}
	cmd.AddCommand(c.depsAddCommand())
	cmd.AddCommand(c.depsRemoveCommand())
	cmd.AddCommand(c.depsListCommand())
	return cmd
}

func (c *CLI) depsAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <parent-id> <child-id>",
		Short: "Record that child depends on parent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withWorkspace(ctx, func(w *workspace) error {
				if err := requireCards(w.sess, args...); err != nil {
					return err
				}
				changed, err := w.sess.AddDependency(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				if !changed {
					printInfo("%s already links to %s", args[0], args[1])
					return nil
				}
				if err := commit(ctx, w.sess); err != nil {
					return err
				}
				printSuccess("Linked %s %s %s", StyleHighlight.Render(args[0]), iconArrow, StyleHighlight.Render(args[1]))
				return nil
			})
		},
	}
}

func (c *CLI) depsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <parent-id> <child-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a dependency",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withWorkspace(ctx, func(w *workspace) error {
				changed, err := w.sess.RemoveDependency(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				if !changed {
					printInfo("No dependency %s %s %s", args[0], iconArrow, args[1])
					return nil
				}
				if err := commit(ctx, w.sess); err != nil {
					return err
				}
				printSuccess("Unlinked %s %s %s", StyleHighlight.Render(args[0]), iconArrow, StyleHighlight.Render(args[1]))
				return nil
			})
		},
	}
}

func (c *CLI) depsListCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List recorded dependencies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				deps := w.sess.Dependencies()
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(deps)
				}
				if len(deps) == 0 {
					printInfo("No dependencies recorded")
					return nil
				}
				writeDepsTable(cmd.OutOrStdout(), w.sess, deps)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw parent to children map")
	return cmd
}

// requireCards fails with INVALID_INPUT when an id is not on the board.
// The session ignores unknown ids; the CLI tells the user.
func requireCards(sess *session.Session, ids ...string) error {
	for _, id := range ids {
		if _, ok := sess.Card(id); !ok {
			return errors.New(errors.ErrCodeInvalidInput, "card %q is not on the board", id)
		}
	}
	return nil
}

// writeDepsTable renders one row per edge, sorted by parent then child.
func writeDepsTable(w io.Writer, sess *session.Session, deps map[string][]string) {
	parents := make([]string, 0, len(deps))
	for p := range deps {
		parents = append(parents, p)
	}
	slices.Sort(parents)

	var rows [][]string
	for _, p := range parents {
		for _, ch := range deps[p] {
			rows = append(rows, []string{cardTitle(sess, p), iconArrow, cardTitle(sess, ch)})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Parent", "", "Child").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 1 {
				return StyleDim
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, t.Render())
}

// cardTitle is the id followed by the card's number and name when known.
func cardTitle(sess *session.Session, id string) string {
	card, ok := sess.Card(id)
	if !ok {
		return id
	}
	parts := []string{id}
	if card.Number != "" {
		parts = append(parts, "#"+card.Number)
	}
	if card.Name != "" {
		parts = append(parts, card.Name)
	}
	return strings.Join(parts, " ")
}
