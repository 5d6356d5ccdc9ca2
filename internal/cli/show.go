package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgraph/pkg/errors"
	"github.com/matzehuels/cardgraph/pkg/view"
)

// Render formats.
const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// showCommand prints the filtered graph as nodes and edges.
func (c *CLI) showCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the filtered graph as JSON nodes and edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withWorkspace(ctx, func(w *workspace) error {
				v := w.sess.View(ctx, w.settings.Render.measurer())
				var buf bytes.Buffer
				if err := view.WriteView(v, &buf); err != nil {
					return err
				}
				return writeOutput(cmd, output, buf.Bytes())
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// renderCommand draws the filtered graph with Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the filtered graph as DOT or SVG",
		Long: `Render the filtered graph. Nodes are filled with the color of their list.

DOT output can be fed to any Graphviz tool; SVG is rendered in-process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			format = strings.ToLower(format)
			if format != formatDOT && format != formatSVG && format != formatJSON {
				return errors.New(errors.ErrCodeUnsupported, "unknown format %q (use dot, svg or json)", format)
			}
			return c.withWorkspace(ctx, func(w *workspace) error {
				prog := newProgress(loggerFromContext(ctx))
				v := w.sess.View(ctx, w.settings.Render.measurer())

				var data []byte
				switch format {
				case formatJSON:
					out, err := view.MarshalView(v)
					if err != nil {
						return err
					}
					data = append(out, '\n')
				default:
					dot := view.ToDOT(v, view.DOTOptions{
						ListColors: w.sess.ListColors(),
						Detailed:   detailed || w.settings.Render.Detailed,
					})
					data = []byte(dot)
					if format == formatSVG {
						svg, err := view.RenderSVG(ctx, dot)
						if err != nil {
							return err
						}
						data = svg
					}
				}
				prog.done(fmt.Sprintf("Rendered %d nodes and %d edges", len(v.Nodes), len(v.Edges)))
				return writeOutput(cmd, output, data)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: dot, svg or json")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show list and members under each label")
	return cmd
}

// writeOutput writes data to path, or to the command's stdout for "" and "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	printSuccess("Wrote")
	printFile(path)
	return nil
}

// writeFileAtomic writes data next to path and renames it into place, so a
// watcher of path never sees a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
