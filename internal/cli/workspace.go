package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/cardgraph/pkg/board"
	"github.com/matzehuels/cardgraph/pkg/errors"
	"github.com/matzehuels/cardgraph/pkg/session"
	"github.com/matzehuels/cardgraph/pkg/storage"
)

// workspace is an open session together with what it was opened from.
type workspace struct {
	sess      *session.Session
	st        storage.Storage
	settings  Settings
	boardPath string
}

// Close releases the session and storage.
func (w *workspace) Close() error {
	sessErr := w.sess.Close()
	if err := w.st.Close(); err != nil {
		return err
	}
	return sessErr
}

// boardFile resolves the board document path: --board or its environment
// default first, then the settings file.
func (c *CLI) boardFile(s Settings) (string, error) {
	if c.boardPath != "" {
		return c.boardPath, nil
	}
	if s.Board != "" {
		return s.Board, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "no board document: pass --board or set %s", envBoard)
}

// loadMode controls how openWorkspace treats the stored configuration.
type loadMode int

const (
	// loadStrict fails when the stored configuration is malformed.
	loadStrict loadMode = iota
	// loadLenient warns about a malformed stored configuration and starts
	// empty, so commands that overwrite it can still run.
	loadLenient
)

// openWorkspace reads the board, opens storage and restores the saved
// configuration. A missing configuration leaves the session empty.
func (c *CLI) openWorkspace(ctx context.Context, mode loadMode) (*workspace, error) {
	logger := loggerFromContext(ctx)

	s, err := c.loadSettings()
	if err != nil {
		return nil, err
	}
	path, err := c.boardFile(s)
	if err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	b, err := board.ReadBoardFile(path)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d cards in %d lists", len(b.Cards), len(b.Lists)))

	cfg := s.Storage.storageConfig()
	cfg.Logger = logger
	st, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", "backend", storage.Describe(cfg), "key", s.Storage.Key)

	sess := session.New(b, session.Options{
		Storage:  st,
		Key:      s.Storage.Key,
		Logger:   logger,
		Debounce: s.Session.Debounce.Duration,
	})
	w := &workspace{sess: sess, st: st, settings: s, boardPath: path}

	found, err := sess.Load(ctx)
	if err != nil && mode == loadLenient && errors.IsMalformedConfig(err) {
		printWarning(msgMalformedConfig)
		logger.Warn("ignoring stored configuration", "key", s.Storage.Key, "error", errors.UserMessage(err))
		found, err = false, nil
	}
	if err != nil {
		w.Close()
		return nil, err
	}
	if found {
		logger.Debug("configuration restored", "edges", len(sess.Dependencies()), "lists", sess.Selection().Len())
	}
	return w, nil
}

// withWorkspace opens a workspace for the duration of fn.
func (c *CLI) withWorkspace(ctx context.Context, fn func(*workspace) error) error {
	return c.withWorkspaceMode(ctx, loadStrict, fn)
}

func (c *CLI) withWorkspaceMode(ctx context.Context, mode loadMode, fn func(*workspace) error) (err error) {
	w, err := c.openWorkspace(ctx, mode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(w)
}

// commit saves the session. Nothing to save is reported as a warning, not
// a failure.
func commit(ctx context.Context, sess *session.Session) error {
	err := sess.Save(ctx)
	if errors.IsEmptyState(err) {
		printWarning(msgNoDependencies)
		return nil
	}
	return err
}
