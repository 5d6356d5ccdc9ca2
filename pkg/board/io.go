package board

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/cardgraph/pkg/errors"
)

// ReadBoardFile reads a scraper document from a JSON file.
func ReadBoardFile(path string) (Board, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Board{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "board file %s", path)
		}
		return Board{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadBoard(f)
}

// IDSeparator joins parent and child ids in edge ids, so card ids may not
// contain it.
const IDSeparator = "-"

// ReadBoard decodes a scraper document from r.
// Every card must carry a non-empty id without [IDSeparator]; a repeated id
// keeps the last card.
func ReadBoard(r io.Reader) (Board, error) {
	var b Board
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Board{}, errors.Wrap(errors.ErrCodeInvalidBoard, err, "decode board")
	}
	for i, c := range b.Cards {
		if c.ID == "" {
			return Board{}, errors.New(errors.ErrCodeInvalidBoard, "card %d (%q) has no id", i, c.Name)
		}
		if strings.Contains(c.ID, IDSeparator) {
			return Board{}, errors.New(errors.ErrCodeInvalidBoard, "card id %q contains %q", c.ID, IDSeparator)
		}
	}
	b.Cards = dedupe(b.Cards)
	return b, nil
}

// WriteBoard encodes b as indented JSON.
func WriteBoard(b Board, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// dedupe keeps the last card for every id at the position of its first
// occurrence, matching how [NewStore] resolves duplicates.
func dedupe(cards []Card) []Card {
	pos := make(map[string]int, len(cards))
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if i, ok := pos[c.ID]; ok {
			out[i] = c
			continue
		}
		pos[c.ID] = len(out)
		out = append(out, c)
	}
	return out
}
