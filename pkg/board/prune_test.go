package board

import (
	"reflect"
	"testing"
)

func TestPrune(t *testing.T) {
	s := NewStore(cardsABC())
	s.AddDependency("A", "B")
	s.AddDependency("A", "C")

	tests := []struct {
		name string
		sel  Selection
		want map[string]Dependency
	}{
		{
			name: "empty selection keeps every card",
			sel:  Selection{},
			want: map[string]Dependency{
				"A": {ID: "A", Dependencies: []string{}, Children: []string{"B", "C"}},
				"B": {ID: "B", Dependencies: []string{"A"}, Children: []string{}},
				"C": {ID: "C", Dependencies: []string{"A"}, Children: []string{}},
			},
		},
		{
			name: "edges to pruned cards are dropped",
			sel:  NewSelection("Todo", "Doing"),
			want: map[string]Dependency{
				"A": {ID: "A", Dependencies: []string{}, Children: []string{"B"}},
				"B": {ID: "B", Dependencies: []string{"A"}, Children: []string{}},
			},
		},
		{
			name: "isolated card",
			sel:  NewSelection("Done"),
			want: map[string]Dependency{
				"C": {ID: "C", Dependencies: []string{}, Children: []string{}},
			},
		},
		{
			name: "unknown list keeps nothing",
			sel:  NewSelection("Archive"),
			want: map[string]Dependency{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prune(s, tt.sel)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Prune() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPruneDoesNotMutateStore(t *testing.T) {
	s := NewStore(cardsABC())
	s.AddDependency("A", "C")
	Prune(s, NewSelection("Todo"))

	if !s.HasEdge("A", "C") {
		t.Error("Prune removed an edge from the store")
	}
}

func TestPruneIsLocallyConsistent(t *testing.T) {
	cards := []Card{
		{ID: "a", ListName: "x"}, {ID: "b", ListName: "y"}, {ID: "c", ListName: "x"},
		{ID: "d", ListName: "z"}, {ID: "e", ListName: "y"},
	}
	s := NewStore(cards)
	for _, p := range []string{"a", "b", "c", "d", "e"} {
		for _, c := range []string{"a", "b", "c", "d", "e"} {
			if p < c || p == "d" {
				s.AddDependency(p, c)
			}
		}
	}

	for _, sel := range []Selection{{}, NewSelection("x"), NewSelection("x", "y"), NewSelection("z")} {
		pruned := Prune(s, sel)
		for id, d := range pruned {
			for _, c := range d.Children {
				peer, ok := pruned[c]
				if !ok {
					t.Fatalf("selection %v: %s has child %s outside the result", sel.Names(), id, c)
				}
				if !contains(peer.Dependencies, id) {
					t.Fatalf("selection %v: %s -> %s not mirrored", sel.Names(), id, c)
				}
			}
			for _, p := range d.Dependencies {
				if _, ok := pruned[p]; !ok {
					t.Fatalf("selection %v: %s depends on %s outside the result", sel.Names(), id, p)
				}
			}
		}
	}
}

func TestFilterCardsOrder(t *testing.T) {
	s := NewStore([]Card{
		{ID: "3", ListName: "b"}, {ID: "1", ListName: "a"}, {ID: "2", ListName: "b"},
	})
	var ids []string
	for _, c := range FilterCards(s, NewSelection("b")) {
		ids = append(ids, c.ID)
	}
	if !reflect.DeepEqual(ids, []string{"3", "2"}) {
		t.Errorf("FilterCards() ids = %v, want [3 2]", ids)
	}
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
