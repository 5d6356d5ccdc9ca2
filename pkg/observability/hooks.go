// Package observability provides hooks for logging, metrics and tracing.
//
// The engine emits events about saving, restoring, rendering and storage
// access without depending on any observability backend. The program
// registers implementations at startup; until then every hook is a no-op.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so there are no import
// cycles and library packages stay free of logging backends.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSessionHooks(&logHooks{logger})
//	    observability.SetStorageHooks(&logHooks{logger})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Session().OnSave(ctx, edges, lists, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from a dependency-graph session.
type SessionHooks interface {
	// OnSave reports a save attempt. err is an EMPTY_STATE error when there
	// was nothing to save.
	OnSave(ctx context.Context, edges, lists int, err error)

	// OnRestore reports a restore from source ("storage" or "import").
	// skipped counts pairs that named cards no longer on the board.
	OnRestore(ctx context.Context, source string, edges, skipped int, err error)

	// OnRender reports that a view was built.
	OnRender(ctx context.Context, nodes, edges int, duration time.Duration)

	// OnResync reports that the card set was replaced.
	OnResync(ctx context.Context, added, removed, droppedEdges int)
}

// =============================================================================
// Storage Hooks
// =============================================================================

// StorageHooks receives events from key-value storage backends.
type StorageHooks interface {
	// OnGet records a read. hit is false when the key was absent.
	OnGet(ctx context.Context, backend, key string, hit bool, duration time.Duration, err error)

	// OnSet records a write of size bytes.
	OnSet(ctx context.Context, backend, key string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSave(context.Context, int, int, error)            {}
func (NoopSessionHooks) OnRestore(context.Context, string, int, int, error) {}
func (NoopSessionHooks) OnRender(context.Context, int, int, time.Duration)  {}
func (NoopSessionHooks) OnResync(context.Context, int, int, int)            {}

// NoopStorageHooks is a no-op implementation of StorageHooks.
type NoopStorageHooks struct{}

func (NoopStorageHooks) OnGet(context.Context, string, string, bool, time.Duration, error) {}
func (NoopStorageHooks) OnSet(context.Context, string, string, int, time.Duration, error)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sessionHooks SessionHooks = NoopSessionHooks{}
	storageHooks StorageHooks = NoopStorageHooks{}
	hooksMu      sync.RWMutex
)

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup. Nil is ignored.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetStorageHooks registers custom storage hooks.
// This should be called once at application startup. Nil is ignored.
func SetStorageHooks(h StorageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storageHooks = h
	}
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Storage returns the registered storage hooks.
func Storage() StorageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storageHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sessionHooks = NoopSessionHooks{}
	storageHooks = NoopStorageHooks{}
}
