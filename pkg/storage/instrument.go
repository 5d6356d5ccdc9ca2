package storage

import (
	"context"
	"time"

	"github.com/matzehuels/cardgraph/pkg/observability"
)

// instrumented reports reads and writes of a backend to the storage hooks.
type instrumented struct {
	Storage
	backend string
}

// Instrument wraps s so every Get and Set is reported to
// [observability.Storage] under the given backend name.
func Instrument(s Storage, backend string) Storage {
	return &instrumented{Storage: s, backend: backend}
}

func (i *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	data, ok, err := i.Storage.Get(ctx, key)
	observability.Storage().OnGet(ctx, i.backend, key, ok, time.Since(start), err)
	return data, ok, err
}

func (i *instrumented) Set(ctx context.Context, key string, data []byte) error {
	start := time.Now()
	err := i.Storage.Set(ctx, key, data)
	observability.Storage().OnSet(ctx, i.backend, key, len(data), time.Since(start), err)
	return err
}
