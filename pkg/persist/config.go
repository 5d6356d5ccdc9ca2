package persist

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/cardgraph/pkg/board"
	"github.com/matzehuels/cardgraph/pkg/errors"
)

// Configuration is the serialized state of a session.
type Configuration struct {
	Dependencies  map[string][]string `json:"dependencies"`
	SelectedLists []string            `json:"selectedLists"`
	ListColors    map[string]string   `json:"listColors"`
}

// IsEmpty reports whether cfg carries no edges and no selected list.
func (c Configuration) IsEmpty() bool {
	for _, children := range c.Dependencies {
		if len(children) > 0 {
			return false
		}
	}
	return len(c.SelectedLists) == 0
}

// normalize replaces nil collections with empty ones so the document always
// carries all three keys with a value of the right type.
func (c Configuration) normalize() Configuration {
	if c.Dependencies == nil {
		c.Dependencies = map[string][]string{}
	}
	if c.SelectedLists == nil {
		c.SelectedLists = []string{}
	}
	if c.ListColors == nil {
		c.ListColors = map[string]string{}
	}
	return c
}

// Snapshot captures the store, selection and list colors as a fresh
// Configuration. Nothing in the result aliases the inputs.
//
// When the store has no edges and the selection is empty, Snapshot returns an
// EMPTY_STATE error and no document.
func Snapshot(s *board.Store, sel board.Selection, colors map[string]string) (Configuration, error) {
	deps := s.AllDependencies()
	if len(deps) == 0 && sel.IsEmpty() {
		return Configuration{}, errors.New(errors.ErrCodeEmptyState, "nothing to save")
	}
	cfg := Configuration{
		Dependencies:  deps,
		SelectedLists: sel.Names(),
		ListColors:    maps.Clone(colors),
	}
	return cfg.normalize(), nil
}

// Restored is the state rebuilt from a Configuration.
type Restored struct {
	Store      *board.Store
	Selection  board.Selection
	ListColors map[string]string // never nil

	// Skipped counts dependency pairs dropped because a card is not on the
	// board any more.
	Skipped int
}

// Restore builds a fresh store over cards and replays every pair of cfg in
// parent→child direction. Pairs naming an unknown card are skipped.
func Restore(cards []board.Card, cfg Configuration) Restored {
	s := board.NewStore(cards)
	skipped := 0
	for _, parent := range slices.Sorted(maps.Keys(cfg.Dependencies)) {
		for _, child := range cfg.Dependencies[parent] {
			if !s.Has(parent) || !s.Has(child) {
				skipped++
				continue
			}
			s.AddDependency(parent, child)
		}
	}

	colors := maps.Clone(cfg.ListColors)
	if colors == nil {
		colors = map[string]string{}
	}
	return Restored{
		Store:      s,
		Selection:  board.NewSelection(cfg.SelectedLists...),
		ListColors: colors,
		Skipped:    skipped,
	}
}

// Parse decodes a configuration document. It rejects invalid JSON, anything
// other than an object, documents missing dependencies or selectedLists (null
// counts as missing), and values of the wrong type. listColors is optional.
func Parse(data []byte) (Configuration, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Configuration{}, malformed(err, "not a JSON object")
	}
	if raw == nil {
		return Configuration{}, malformed(nil, "not a JSON object")
	}

	var cfg Configuration
	if err := field(raw, "dependencies", true, &cfg.Dependencies); err != nil {
		return Configuration{}, err
	}
	if err := field(raw, "selectedLists", true, &cfg.SelectedLists); err != nil {
		return Configuration{}, err
	}
	if err := field(raw, "listColors", false, &cfg.ListColors); err != nil {
		return Configuration{}, err
	}
	return cfg.normalize(), nil
}

func field(raw map[string]json.RawMessage, key string, required bool, dst any) error {
	v, ok := raw[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		if required {
			return malformed(nil, "missing %q", key)
		}
		return nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return malformed(err, "%q has the wrong type", key)
	}
	return nil
}

func malformed(cause error, format string, args ...any) error {
	if cause == nil {
		return errors.New(errors.ErrCodeMalformedConfig, format, args...)
	}
	return errors.Wrap(errors.ErrCodeMalformedConfig, cause, format, args...)
}

// Marshal encodes cfg as compact JSON with all three keys present.
func Marshal(cfg Configuration) ([]byte, error) {
	data, err := json.Marshal(cfg.normalize())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode configuration")
	}
	return data, nil
}

// Export returns cfg as the copy-paste string.
func Export(cfg Configuration) (string, error) {
	data, err := Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Import parses a copy-paste string. Surrounding whitespace is ignored.
func Import(s string) (Configuration, error) {
	return Parse([]byte(strings.TrimSpace(s)))
}
