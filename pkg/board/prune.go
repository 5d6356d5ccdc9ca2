package board

// Dependency is the minimal per-card shape of a pruned graph: the card id and
// the edges that survive pruning, both sorted by id.
type Dependency struct {
	ID           string   `json:"id"`
	Dependencies []string `json:"dependencies"`
	Children     []string `json:"children"`
}

// FilterCards returns the cards that participate in a view for sel, in board
// order. An empty selection keeps every card; otherwise only cards whose
// ListName is selected are kept.
func FilterCards(s *Store, sel Selection) []Card {
	if sel.IsEmpty() {
		return s.Cards()
	}
	var out []Card
	for _, id := range s.order {
		e := s.entries[id]
		if sel.Has(e.card.ListName) {
			out = append(out, e.card.Clone())
		}
	}
	return out
}

// Prune derives a locally consistent sub-graph for sel. Each kept card maps to
// its children and dependencies restricted to other kept cards: edges that
// would point at a pruned-out card are dropped, never redirected. Every edge in
// the result therefore connects two keys of the result.
func Prune(s *Store, sel Selection) map[string]Dependency {
	keep := make(set, s.Len())
	for _, c := range FilterCards(s, sel) {
		keep[c.ID] = struct{}{}
	}

	out := make(map[string]Dependency, len(keep))
	for id := range keep {
		e := s.entries[id]
		out[id] = Dependency{
			ID:           id,
			Dependencies: restrict(e.dependencies, keep),
			Children:     restrict(e.children, keep),
		}
	}
	return out
}

// restrict returns the sorted members of ids that are also in keep.
// The result is never nil so pruned records serialize as empty arrays.
func restrict(ids, keep set) []string {
	out := []string{}
	for _, id := range ids.sorted() {
		if _, ok := keep[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
