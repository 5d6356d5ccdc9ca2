package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardgraph/pkg/errors"
)

// logHooks forwards session and storage events to the CLI logger.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnSave(_ context.Context, edges, lists int, err error) {
	switch {
	case errors.IsEmptyState(err):
		h.logger.Debug("save skipped", "reason", "empty")
	case err != nil:
		h.logger.Warn("save failed", "error", err)
	default:
		h.logger.Debug("saved", "edges", edges, "lists", lists)
	}
}

func (h *logHooks) OnRestore(_ context.Context, source string, edges, skipped int, err error) {
	if err != nil {
		h.logger.Warn("restore failed", "source", source, "error", err)
		return
	}
	h.logger.Debug("restored", "source", source, "edges", edges, "skipped", skipped)
}

func (h *logHooks) OnRender(_ context.Context, nodes, edges int, d time.Duration) {
	h.logger.Debug("view built", "nodes", nodes, "edges", edges, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnResync(_ context.Context, added, removed, dropped int) {
	h.logger.Info("board resynced", "added", added, "removed", removed, "dropped_edges", dropped)
}

func (h *logHooks) OnGet(_ context.Context, backend, key string, hit bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("storage read failed", "backend", backend, "key", key, "error", err)
		return
	}
	h.logger.Debug("storage read", "backend", backend, "key", key, "hit", hit, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnSet(_ context.Context, backend, key string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("storage write failed", "backend", backend, "key", key, "error", err)
		return
	}
	h.logger.Debug("storage write", "backend", backend, "key", key, "bytes", size, "took", d.Round(time.Microsecond))
}
