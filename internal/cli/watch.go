package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgraph/pkg/board"
	"github.com/matzehuels/cardgraph/pkg/debounce"
	"github.com/matzehuels/cardgraph/pkg/errors"
	"github.com/matzehuels/cardgraph/pkg/view"
)

// watchCommand resyncs the session whenever the scraper rewrites the board
// document.
func (c *CLI) watchCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Resync and save whenever the board document changes",
		Long: `Watch the board document for changes. Each time the scraper rewrites it,
the card set is resynced, dependencies of removed cards are dropped, the
configuration is saved, and the view is written to --output if given.

Bursts of file events are coalesced using the session debounce window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withWorkspace(ctx, func(w *workspace) error {
				return runWatch(ctx, w, output)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the view JSON here after every resync")
	return cmd
}

func runWatch(ctx context.Context, w *workspace, output string) error {
	logger := loggerFromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: scrapers usually replace the file by rename,
	// which drops a watch placed on the file itself.
	target, err := filepath.Abs(w.boardPath)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.boardPath, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	changed := make(chan struct{}, 1)
	d := debounce.New(w.settings.Session.Debounce.Duration, func(struct{}) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer d.Stop()

	if err := writeView(ctx, w, output); err != nil {
		return err
	}
	printInfo("Watching %s", StyleHighlight.Render(w.boardPath))

	for {
		select {
		case <-ctx.Done():
			printInfo("Stopped watching")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				logger.Debug("board event", "op", ev.Op.String())
				d.Push(struct{}{})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-changed:
			if err := resync(ctx, w, output); err != nil {
				if errors.Is(err, errors.ErrCodeInvalidBoard) || errors.Is(err, errors.ErrCodeFileNotFound) {
					logger.Warn("board not readable, keeping previous cards", "error", errors.UserMessage(err))
					continue
				}
				return err
			}
		}
	}
}

// resync reloads the board document into the session and saves.
func resync(ctx context.Context, w *workspace, output string) error {
	b, err := board.ReadBoardFile(w.boardPath)
	if err != nil {
		return err
	}
	stats := w.sess.Resync(ctx, b)
	printInfo("Resynced %d cards (+%d -%d, %d dependencies dropped)",
		len(b.Cards), stats.Added, stats.Removed, stats.DroppedEdges)

	if err := w.sess.Save(ctx); err != nil && !errors.IsEmptyState(err) {
		return err
	}
	return writeView(ctx, w, output)
}

func writeView(ctx context.Context, w *workspace, output string) error {
	if output == "" {
		return nil
	}
	v := w.sess.View(ctx, w.settings.Render.measurer())
	var buf bytes.Buffer
	if err := view.WriteView(v, &buf); err != nil {
		return err
	}
	if err := writeFileAtomic(output, buf.Bytes()); err != nil {
		return err
	}
	printFile(output)
	return nil
}
