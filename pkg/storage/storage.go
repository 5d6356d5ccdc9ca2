// Package storage provides the key-value mechanism configurations are saved
// to.
//
// # Overview
//
// The engine saves exactly one document under one key ([DefaultKey]). Where
// that key lives is a deployment choice, so the engine only depends on the
// small [Storage] interface. Backends:
//
//   - [Memory]: process-local map, for tests and dry runs
//   - [File]: one file per key under a directory, written atomically
//   - [Badger]: embedded BadgerDB, on disk or in memory
//   - [Redis]: a Redis server, keys namespaced by a prefix
//   - [Mongo]: a MongoDB collection, one document per key
//
// [Open] builds a backend from a [Config], typically read from the settings
// file.
//
// # Semantics
//
// Get reports a missing key as (nil, false, nil), never as an error. Set
// overwrites. Delete of a missing key succeeds. All backends are safe for
// concurrent use.
package storage

import (
	"context"

	"github.com/matzehuels/cardgraph/pkg/errors"
)

// DefaultKey is the storage key the configuration document is saved under.
const DefaultKey = "graph-dep-config"

// Storage is a byte-oriented key-value store.
type Storage interface {
	// Get retrieves the value for key. The bool is false if key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key, replacing any previous value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}

func storageErr(err error, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeStorage, err, format, args...)
}
