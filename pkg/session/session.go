// Package session ties the engine together for one user working on one
// board.
//
// # Overview
//
// A [Session] owns a [board.Store], the list [board.Selection], the list
// colors, the card armed by the two-click "pick" flow, and a handle to the
// [storage.Storage] the configuration is saved to. It is the explicit
// replacement for process-wide singletons: create one per board and pass it
// around.
//
//	sess := session.New(b, session.Options{
//	    Storage:  st,
//	    AutoSave: true,
//	    Logger:   logger,
//	})
//	defer sess.Close()
//
//	if _, err := sess.Load(ctx); err != nil {
//	    return err
//	}
//	sess.AddDependency(ctx, "a", "b")
//	v := sess.View(ctx, nil)
//
// # Autosave
//
// With AutoSave set, every change to the graph, the selection or a list color
// is followed by a save. A save with nothing to save (no edges and no
// selected list) is not a failure: it is logged as "No dependencies found"
// and storage is left as it was.
//
// # List Colors
//
// [Session.SetListColor] is debounced per list, so a color picker can push
// every intermediate value. Only the last color of a burst is committed, and
// only when it differs from the list's current color.
//
// # Concurrency
//
// Color commits run on timer goroutines, so every method takes the session
// lock. Storage writes happen outside it but are serialized with each other,
// in the order their snapshots were taken.
package session

import (
	"context"
	"io"
	"maps"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardgraph/pkg/board"
	"github.com/matzehuels/cardgraph/pkg/debounce"
	"github.com/matzehuels/cardgraph/pkg/errors"
	"github.com/matzehuels/cardgraph/pkg/observability"
	"github.com/matzehuels/cardgraph/pkg/persist"
	"github.com/matzehuels/cardgraph/pkg/storage"
	"github.com/matzehuels/cardgraph/pkg/view"
)

// DefaultListColor is the color of a list nobody picked a color for.
const DefaultListColor = "#ffffff"

// Options configures a [Session].
type Options struct {
	// Storage receives saved configurations. Nil uses an in-memory store.
	Storage storage.Storage

	// Key is the storage key. Empty uses [storage.DefaultKey].
	Key string

	// Logger receives session activity. Nil discards it.
	Logger *log.Logger

	// AutoSave saves after every change.
	AutoSave bool

	// Debounce is the quiet window for list color commits.
	// Zero uses [debounce.DefaultDelay].
	Debounce time.Duration

	// Hooks receives session events. Nil uses [observability.Session].
	Hooks observability.SessionHooks
}

// Session is the controller for one board.
type Session struct {
	// saveMu serializes saves from snapshot through the storage write, so a
	// slow older write never lands after a newer one. Taken before mu.
	saveMu sync.Mutex

	mu     sync.Mutex
	lists  []board.List
	store  *board.Store
	sel    board.Selection
	colors map[string]string
	armed  string
	colorQ map[string]*debounce.Debouncer[string]
	epoch  uint64 // bumped by every restore; color commits from older epochs are dropped
	closed bool

	st       storage.Storage
	key      string
	logger   *log.Logger
	autoSave bool
	delay    time.Duration
	hooks    observability.SessionHooks
}

// New creates a session over the cards of b with no edges and nothing
// selected. Call [Session.Load] to restore a saved configuration.
func New(b board.Board, opts Options) *Session {
	if opts.Storage == nil {
		opts.Storage = storage.NewMemory()
	}
	if opts.Key == "" {
		opts.Key = storage.DefaultKey
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Session{
		lists:    b.Lists,
		store:    board.NewStore(b.Cards),
		colors:   map[string]string{},
		colorQ:   map[string]*debounce.Debouncer[string]{},
		st:       opts.Storage,
		key:      opts.Key,
		logger:   opts.Logger,
		autoSave: opts.AutoSave,
		delay:    opts.Debounce,
		hooks:    opts.Hooks,
	}
}

func (s *Session) sessionHooks() observability.SessionHooks {
	if s.hooks != nil {
		return s.hooks
	}
	return observability.Session()
}

// AddDependency records parent→child and autosaves if the graph changed.
// Unknown ids are ignored. The error reports a failed save only.
func (s *Session) AddDependency(ctx context.Context, parentID, childID string) (bool, error) {
	s.mu.Lock()
	changed := s.store.AddDependency(parentID, childID)
	s.mu.Unlock()

	if !changed {
		s.logger.Debug("dependency unchanged", "parent", parentID, "child", childID)
		return false, nil
	}
	s.logger.Debug("dependency added", "parent", parentID, "child", childID)
	return true, s.autosave(ctx)
}

// RemoveDependency deletes parent→child and autosaves if the graph changed.
func (s *Session) RemoveDependency(ctx context.Context, parentID, childID string) (bool, error) {
	s.mu.Lock()
	changed := s.store.RemoveDependency(parentID, childID)
	s.mu.Unlock()

	if !changed {
		s.logger.Debug("dependency unchanged", "parent", parentID, "child", childID)
		return false, nil
	}
	s.logger.Debug("dependency removed", "parent", parentID, "child", childID)
	return true, s.autosave(ctx)
}

// ToggleList flips whether name is selected, autosaves, and reports whether
// the list is now selected.
func (s *Session) ToggleList(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	selected := s.sel.Toggle(name)
	s.mu.Unlock()

	s.logger.Debug("list toggled", "list", name, "selected", selected)
	return selected, s.autosave(ctx)
}

// Save snapshots the session and writes it to storage. With nothing to save
// it returns an EMPTY_STATE error and leaves storage untouched.
func (s *Session) Save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	cfg, err := persist.Snapshot(s.store, s.sel, s.colors)
	s.mu.Unlock()

	if err == nil {
		err = persist.Save(ctx, s.st, s.key, cfg)
	}
	s.sessionHooks().OnSave(ctx, edgeCount(cfg), len(cfg.SelectedLists), err)
	return err
}

// autosave saves when enabled. EMPTY_STATE is reported and swallowed.
func (s *Session) autosave(ctx context.Context) error {
	if !s.autoSave {
		return nil
	}
	err := s.Save(ctx)
	if errors.IsEmptyState(err) {
		s.logger.Info("No dependencies found")
		return nil
	}
	if err != nil {
		s.logger.Error("autosave failed", "err", err)
		return err
	}
	s.logger.Debug("saved", "key", s.key)
	return nil
}

// Load restores the configuration stored under the session key. It reports
// false when nothing is stored. A malformed stored document is returned as
// an error and the session is left unchanged.
func (s *Session) Load(ctx context.Context) (bool, error) {
	cfg, ok, err := persist.Load(ctx, s.st, s.key)
	if err != nil {
		s.sessionHooks().OnRestore(ctx, "storage", 0, 0, err)
		return false, err
	}
	if !ok {
		return false, nil
	}
	s.restore(ctx, "storage", cfg)
	return true, nil
}

// Export returns the current state as a copy-paste string.
// It fails with EMPTY_STATE when there is nothing to export.
func (s *Session) Export() (string, error) {
	s.mu.Lock()
	cfg, err := persist.Snapshot(s.store, s.sel, s.colors)
	s.mu.Unlock()
	if err != nil {
		return "", err
	}
	return persist.Export(cfg)
}

// Import replaces the session state with a pasted configuration. A malformed
// string fails with MALFORMED_CONFIG and leaves the session unchanged.
// Import does not save; call [Session.Save] to persist the result.
func (s *Session) Import(ctx context.Context, str string) error {
	cfg, err := persist.Import(str)
	if err != nil {
		s.sessionHooks().OnRestore(ctx, "import", 0, 0, err)
		return err
	}
	s.restore(ctx, "import", cfg)
	return nil
}

func (s *Session) restore(ctx context.Context, source string, cfg persist.Configuration) {
	s.mu.Lock()
	for _, q := range s.colorQ {
		q.Stop()
	}
	s.colorQ = map[string]*debounce.Debouncer[string]{}
	s.epoch++
	r := persist.Restore(s.store.Cards(), cfg)
	s.store = r.Store
	s.sel = r.Selection
	s.colors = r.ListColors
	s.armed = ""
	edges := s.store.EdgeCount()
	s.mu.Unlock()

	if r.Skipped > 0 {
		s.logger.Warn("skipped dependencies on cards no longer on the board", "count", r.Skipped)
	}
	s.logger.Debug("restored", "source", source, "edges", edges, "lists", r.Selection.Len())
	s.sessionHooks().OnRestore(ctx, source, edges, r.Skipped, nil)
}

// View prunes the graph to the current selection and builds the view.
// A nil measurer uses [view.DefaultMeasurer].
func (s *Session) View(ctx context.Context, m view.Measurer) view.View {
	start := time.Now()
	s.mu.Lock()
	v := view.Build(board.Prune(s.store, s.sel), s.store, m)
	s.mu.Unlock()

	s.sessionHooks().OnRender(ctx, len(v.Nodes), len(v.Edges), time.Since(start))
	return v
}

// Resync replaces the card set after the board changed. Edges touching
// removed cards are dropped; an armed card that disappeared is disarmed.
func (s *Session) Resync(ctx context.Context, b board.Board) board.ResyncStats {
	s.mu.Lock()
	stats := s.store.Resync(b.Cards)
	s.lists = b.Lists
	if s.armed != "" && !s.store.Has(s.armed) {
		s.armed = ""
	}
	s.mu.Unlock()

	if stats.DroppedEdges > 0 {
		s.logger.Warn("dropped dependencies of removed cards", "edges", stats.DroppedEdges)
	}
	s.sessionHooks().OnResync(ctx, stats.Added, stats.Removed, stats.DroppedEdges)
	return stats
}

// Close stops pending color commits without applying them.
// Call [Session.FlushColors] first to keep them.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.colorQ {
		q.Stop()
	}
	s.closed = true
	return nil
}

func edgeCount(cfg persist.Configuration) int {
	n := 0
	for _, children := range cfg.Dependencies {
		n += len(children)
	}
	return n
}

// Lists returns the board's list names in board order.
func (s *Session) Lists() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return board.Board{Lists: s.lists}.ListNames()
}

// Cards returns the board's cards in board order.
func (s *Session) Cards() []board.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Cards()
}

// Card returns the card with the given id.
func (s *Session) Card(id string) (board.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Card(id)
}

// Dependencies returns every card with children, mapped to its children.
func (s *Session) Dependencies() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.AllDependencies()
}

// Parents returns the cards pointing to id.
func (s *Session) Parents(id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Dependencies(id)
}

// Selection returns a copy of the selected lists.
func (s *Session) Selection() board.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Clone()
}

// ListColors returns a copy of the committed list colors.
func (s *Session) ListColors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.colors)
}
