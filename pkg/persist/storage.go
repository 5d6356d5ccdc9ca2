package persist

import (
	"context"

	"github.com/matzehuels/cardgraph/pkg/storage"
)

// Save writes cfg under key.
func Save(ctx context.Context, st storage.Storage, key string, cfg Configuration) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return st.Set(ctx, key, data)
}

// Load reads the configuration stored under key. The bool is false when
// nothing is stored, which is not an error. A stored document of the wrong
// shape fails with MALFORMED_CONFIG.
func Load(ctx context.Context, st storage.Storage, key string) (Configuration, bool, error) {
	data, ok, err := st.Get(ctx, key)
	if err != nil || !ok {
		return Configuration{}, false, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Configuration{}, false, err
	}
	return cfg, true, nil
}
