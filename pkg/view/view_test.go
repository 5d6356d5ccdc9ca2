package view

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/cardgraph/pkg/board"
)

func sampleStore() *board.Store {
	s := board.NewStore([]board.Card{
		{ID: "A", Name: "Alpha", Number: "1", ListName: "Todo"},
		{ID: "B", Name: "Beta", Number: "2", ListName: "Doing"},
		{ID: "C", Name: "Gamma", Number: "3", ListName: "Done"},
	})
	s.AddDependency("A", "C")
	s.AddDependency("A", "B")
	return s
}

func fixedHeight(h float64) Measurer {
	return MeasurerFunc(func(string) float64 { return h })
}

func TestBuild(t *testing.T) {
	s := sampleStore()
	v := Build(board.Prune(s, board.Selection{}), s, fixedHeight(40))

	var ids []string
	for _, n := range v.Nodes {
		ids = append(ids, n.ID)
		if n.Height != 40 {
			t.Errorf("node %s height = %v, want 40", n.ID, n.Height)
		}
	}
	if !reflect.DeepEqual(ids, []string{"A", "B", "C"}) {
		t.Errorf("node order = %v, want [A B C]", ids)
	}

	want := []Edge{
		{ID: "A-B", Source: "A", Target: "B"},
		{ID: "A-C", Source: "A", Target: "C"},
	}
	if !reflect.DeepEqual(v.Edges, want) {
		t.Errorf("edges = %v, want %v", v.Edges, want)
	}
	if v.Nodes[0].Label != "1 Alpha" {
		t.Errorf("label = %q, want %q", v.Nodes[0].Label, "1 Alpha")
	}
}

func TestBuildPruned(t *testing.T) {
	s := sampleStore()
	v := Build(board.Prune(s, board.NewSelection("Todo", "Doing")), s, fixedHeight(1))

	if len(v.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(v.Nodes))
	}
	if len(v.Edges) != 1 || v.Edges[0].ID != "A-B" {
		t.Errorf("edges = %v, want only A-B", v.Edges)
	}
}

func TestBuildEmpty(t *testing.T) {
	s := board.NewStore(nil)
	v := Build(board.Prune(s, board.Selection{}), s, nil)

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"nodes":[],"edges":[]}` {
		t.Errorf("empty view = %s", data)
	}
}

func TestBuildDeterministic(t *testing.T) {
	s := sampleStore()
	a, _ := MarshalView(Build(board.Prune(s, board.Selection{}), s, nil))
	b, _ := MarshalView(Build(board.Prune(s, board.Selection{}), s, nil))
	if !bytes.Equal(a, b) {
		t.Error("two builds of the same graph differ")
	}
}

func TestBuildDecodesName(t *testing.T) {
	s := board.NewStore([]board.Card{{ID: "x", Name: "Caf%C3%A9 menu", Number: "7"}})
	v := Build(board.Prune(s, board.Selection{}), s, nil)

	n := v.Nodes[0]
	if n.Name != "Café menu" {
		t.Errorf("Name = %q, want decoded", n.Name)
	}
	if n.Label != "7 Café menu" {
		t.Errorf("Label = %q", n.Label)
	}
	if orig, _ := s.Card("x"); orig.Name != "Caf%C3%A9 menu" {
		t.Error("Build modified the stored card")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		number, name string
		want         string
	}{
		{"12", "Write docs", "12 Write docs"},
		{"", "Write docs", "Write docs"},
		{"12", "", "12"},
		{"", "", ""},
		{"3", "Fix%20login", "3 Fix login"},
		{"3", "100% done", "3 100% done"},
	}

	for _, tt := range tests {
		if got := Label(tt.number, tt.name); got != tt.want {
			t.Errorf("Label(%q, %q) = %q, want %q", tt.number, tt.name, got, tt.want)
		}
	}
}

func TestWriteView(t *testing.T) {
	s := sampleStore()
	var buf bytes.Buffer
	if err := WriteView(Build(board.Prune(s, board.Selection{}), s, nil), &buf); err != nil {
		t.Fatalf("WriteView: %v", err)
	}

	var decoded struct {
		Nodes []map[string]any `json:"nodes"`
		Edges []map[string]any `json:"edges"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.Nodes[0]["listName"] != "Todo" || decoded.Nodes[0]["label"] != "1 Alpha" {
		t.Errorf("node fields = %v", decoded.Nodes[0])
	}
	if decoded.Edges[0]["source"] != "A" || decoded.Edges[0]["target"] != "B" {
		t.Errorf("edge fields = %v", decoded.Edges[0])
	}
}

func TestEdgeIDsUniqueForBoardIDs(t *testing.T) {
	b, err := board.ReadBoard(strings.NewReader(`{"cards": [
		{"id": "a"}, {"id": "ab"}, {"id": "b"}, {"id": "bc"}, {"id": "c"}, {"id": "abc"}
	]}`))
	if err != nil {
		t.Fatalf("ReadBoard: %v", err)
	}
	s := board.NewStore(b.Cards)
	ids := s.IDs()
	for _, p := range ids {
		for _, c := range ids {
			s.AddDependency(p, c)
		}
	}

	v := Build(board.Prune(s, board.Selection{}), s, nil)
	if len(v.Edges) != len(ids)*len(ids) {
		t.Fatalf("got %d edges, want %d", len(v.Edges), len(ids)*len(ids))
	}
	seen := map[string]Edge{}
	for _, e := range v.Edges {
		if prev, ok := seen[e.ID]; ok {
			t.Fatalf("edge id %q shared by %s->%s and %s->%s", e.ID, prev.Source, prev.Target, e.Source, e.Target)
		}
		seen[e.ID] = e
	}
}

func TestEdgeIDAmbiguousIDsRejected(t *testing.T) {
	// a-b -> c and a -> b-c would share the id "a-b-c".
	if EdgeID("a-b", "c") != EdgeID("a", "b-c") {
		t.Fatal("expected colliding ids for separator-bearing card ids")
	}
	_, err := board.ReadBoard(strings.NewReader(`{"cards": [{"id": "a-b"}, {"id": "c"}]}`))
	if err == nil {
		t.Fatal("ReadBoard accepted a card id containing the edge separator")
	}
}
