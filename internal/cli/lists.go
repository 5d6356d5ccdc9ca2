package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgraph/pkg/errors"
	"github.com/matzehuels/cardgraph/pkg/session"
)

// listsCommand groups the list selection and color subcommands.
func (c *CLI) listsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Select and color board lists",
		Long: `Select the lists whose cards appear in the rendered graph and set the
color each list is drawn with. With no list selected every card is shown.`,
	}
	cmd.AddCommand(c.listsListCommand())
	cmd.AddCommand(c.listsToggleCommand())
	cmd.AddCommand(c.listsColorCommand())
	cmd.AddCommand(c.listsPickCommand())
	return cmd
}

func (c *CLI) listsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show lists with their selection and color",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				writeListsTable(cmd.OutOrStdout(), w.sess)
				return nil
			})
		},
	}
}

func (c *CLI) listsToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <list>...",
		Short: "Flip whether lists are selected",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withWorkspace(ctx, func(w *workspace) error {
				if err := requireLists(w.sess, args...); err != nil {
					return err
				}
				for _, name := range args {
					selected, err := w.sess.ToggleList(ctx, name)
					if err != nil {
						return err
					}
					state := "deselected"
					if selected {
						state = "selected"
					}
					printInfo("%s %s", StyleHighlight.Render(name), state)
				}
				return commit(ctx, w.sess)
			})
		},
	}
}

func (c *CLI) listsColorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "color <list> <color>",
		Short: "Set the color a list is drawn with",
		Example: `  cardgraph lists color Doing '#ffcc00'
  cardgraph lists color Done green`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withWorkspace(ctx, func(w *workspace) error {
				name, color := args[0], args[1]
				if err := requireLists(w.sess, name); err != nil {
					return err
				}
				if color == "" {
					return errors.New(errors.ErrCodeInvalidInput, "empty color")
				}
				before := w.sess.ListColor(name)
				w.sess.SetListColor(name, color)
				w.sess.FlushColors()
				if w.sess.ListColor(name) == before {
					printInfo("%s is already %s", name, color)
					return nil
				}
				if err := commit(ctx, w.sess); err != nil {
					return err
				}
				printSuccess("%s is now %s", StyleHighlight.Render(name), color)
				return nil
			})
		},
	}
}

func (c *CLI) listsPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose the selected lists interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withWorkspace(ctx, func(w *workspace) error {
				model := NewListPickModel(listItems(w.sess), w.sess.Selection().Names())
				final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
				if err != nil {
					return fmt.Errorf("list picker: %w", err)
				}
				m, ok := final.(ListPickModel)
				if !ok || !m.Confirmed {
					printInfo("Selection unchanged")
					return nil
				}
				n, err := applySelection(ctx, w.sess, m.SelectedNames())
				if err != nil {
					return err
				}
				if n == 0 {
					printInfo("Selection unchanged")
					return nil
				}
				return commit(ctx, w.sess)
			})
		},
	}
}

// applySelection toggles lists until the selection equals names and
// reports how many toggles it took.
func applySelection(ctx context.Context, sess *session.Session, names []string) (int, error) {
	current := sess.Selection()
	n := 0
	for _, name := range sess.Lists() {
		if current.Has(name) == slices.Contains(names, name) {
			continue
		}
		if _, err := sess.ToggleList(ctx, name); err != nil {
			return n, err
		}
		n++
	}
	// Lists saved earlier but no longer on the board.
	for _, name := range current.Names() {
		if !slices.Contains(sess.Lists(), name) && !slices.Contains(names, name) {
			if _, err := sess.ToggleList(ctx, name); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

// requireLists fails with INVALID_INPUT when a name is not a board list.
func requireLists(sess *session.Session, names ...string) error {
	lists := sess.Lists()
	for _, name := range names {
		if !slices.Contains(lists, name) {
			return errors.New(errors.ErrCodeInvalidInput, "list %q is not on the board", name)
		}
	}
	return nil
}

// listItems describes every board list with its card count and color.
func listItems(sess *session.Session) []ListItem {
	counts := map[string]int{}
	for _, card := range sess.Cards() {
		counts[card.ListName]++
	}
	names := sess.Lists()
	items := make([]ListItem, len(names))
	for i, name := range names {
		items[i] = ListItem{Name: name, Cards: counts[name], Color: sess.ListColor(name)}
	}
	return items
}

func writeListsTable(w io.Writer, sess *session.Session) {
	sel := sess.Selection()
	var rows [][]string
	for _, it := range listItems(sess) {
		mark := ""
		if sel.Has(it.Name) {
			mark = iconSuccess
		}
		rows = append(rows, []string{it.Name, strconv.Itoa(it.Cards), mark, it.Color})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("List", "Cards", "Selected", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 2 {
				return StyleSuccess
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, t.Render())
	if sel.IsEmpty() {
		fmt.Fprintln(w, StyleDim.Render("  nothing selected: every card is shown"))
	}
}
