package view

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/matzehuels/cardgraph/pkg/board"
)

// Node is a card ready for display. The embedded card carries the display
// metadata verbatim except for Name, which is percent-decoded.
type Node struct {
	board.Card
	Label  string  `json:"label"`  // Number and name, e.g. "12 Write docs"
	Height float64 `json:"height"` // Measured height of the name at node width
}

// Edge is a directed parent→child connection.
type Edge struct {
	ID     string `json:"id"` // [EdgeID] of Source and Target
	Source string `json:"source"`
	Target string `json:"target"`
}

// View is the abstract graph handed to a renderer.
type View struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// EdgeID returns the deterministic id of the edge parent→child. It is
// unique for ids without [board.IDSeparator], which [board.ReadBoard]
// enforces.
func EdgeID(parentID, childID string) string {
	return parentID + board.IDSeparator + childID
}

// Build converts a pruned graph into a view. Nodes follow the store's board
// order; edges follow node order, then sorted child id. Entries of pruned that
// the store does not know are skipped. A nil measurer uses [DefaultMeasurer].
//
// Build is deterministic: two calls over an unchanged graph return equal views.
func Build(pruned map[string]board.Dependency, s *board.Store, m Measurer) View {
	if m == nil {
		m = DefaultMeasurer()
	}

	v := View{Nodes: []Node{}, Edges: []Edge{}}
	for _, id := range s.IDs() {
		dep, ok := pruned[id]
		if !ok {
			continue
		}
		card, _ := s.Card(id)
		label := Label(card.Number, card.Name)
		card.Name = decode(card.Name)
		v.Nodes = append(v.Nodes, Node{
			Card:   card,
			Label:  label,
			Height: m.Height(card.Name),
		})
		for _, child := range dep.Children {
			v.Edges = append(v.Edges, Edge{ID: EdgeID(id, child), Source: id, Target: child})
		}
	}
	return v
}

// Label joins number and name with a single space, skipping empty parts, and
// decodes percent-escapes. Input that does not decode is kept verbatim.
func Label(number, name string) string {
	var parts []string
	for _, p := range []string{number, name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return decode(strings.Join(parts, " "))
}

func decode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	out, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return out
}

// MarshalView encodes v as indented JSON.
func MarshalView(v View) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal view: %w", err)
	}
	return data, nil
}

// WriteView writes v as indented JSON followed by a newline.
func WriteView(v View, w io.Writer) error {
	data, err := MarshalView(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write view: %w", err)
	}
	return nil
}
