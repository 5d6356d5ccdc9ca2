package board

import (
	"maps"
	"slices"
)

type set map[string]struct{}

func (s set) sorted() []string {
	if len(s) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(s))
}

// entry holds one card and both of its edge sets.
type entry struct {
	card         Card
	children     set // cards this card points to
	dependencies set // cards pointing to this card
}

// Store owns the card set and the dependency edges between cards.
//
// For every pair of known cards A and B, B is in A's children if and only if
// A is in B's dependencies. Every mutation updates both sides together.
//
// Mutations referencing unknown ids are silent no-ops: the store never creates
// placeholder cards. Cycles, including self-loops, are accepted; the store is
// a set of directed pairs, not a DAG.
//
// The zero value is not usable - use [NewStore]. A Store is owned by a single
// session and is not safe for concurrent use.
type Store struct {
	entries map[string]*entry
	order   []string // card ids in board order
}

// NewStore creates a store over the given cards with no edges.
// Cards with an empty ID are ignored. When two cards share an ID the later
// one's metadata wins and the card keeps its first position.
func NewStore(cards []Card) *Store {
	s := &Store{entries: make(map[string]*entry, len(cards))}
	for _, c := range cards {
		s.put(c)
	}
	return s
}

func (s *Store) put(c Card) {
	if c.ID == "" {
		return
	}
	if e, ok := s.entries[c.ID]; ok {
		e.card = c.Clone()
		return
	}
	s.entries[c.ID] = &entry{card: c.Clone(), children: set{}, dependencies: set{}}
	s.order = append(s.order, c.ID)
}

// AddDependency records the edge parent→child: child joins parent's children
// and parent joins child's dependencies. It reports whether the store changed.
// Unknown ids and already-present edges leave the store untouched.
func (s *Store) AddDependency(parentID, childID string) bool {
	parent, ok := s.entries[parentID]
	if !ok {
		return false
	}
	child, ok := s.entries[childID]
	if !ok {
		return false
	}
	if _, exists := parent.children[childID]; exists {
		return false
	}
	parent.children[childID] = struct{}{}
	child.dependencies[parentID] = struct{}{}
	return true
}

// RemoveDependency deletes the edge parent→child in both directions.
// It reports whether the store changed; removing a missing edge is a no-op.
func (s *Store) RemoveDependency(parentID, childID string) bool {
	parent, ok := s.entries[parentID]
	if !ok {
		return false
	}
	child, ok := s.entries[childID]
	if !ok {
		return false
	}
	if _, exists := parent.children[childID]; !exists {
		return false
	}
	delete(parent.children, childID)
	delete(child.dependencies, parentID)
	return true
}

// HasEdge reports whether the edge parent→child exists.
func (s *Store) HasEdge(parentID, childID string) bool {
	e, ok := s.entries[parentID]
	if !ok {
		return false
	}
	_, ok = e.children[childID]
	return ok
}

// AllDependencies returns, for every card with at least one child, its
// children sorted by id. Childless cards are omitted. The result is the
// serialization source for snapshots and is never nil.
func (s *Store) AllDependencies() map[string][]string {
	out := make(map[string][]string)
	for id, e := range s.entries {
		if len(e.children) > 0 {
			out[id] = e.children.sorted()
		}
	}
	return out
}

// Children returns the sorted ids of cards that id points to.
// Returns nil for unknown ids and childless cards.
func (s *Store) Children(id string) []string {
	if e, ok := s.entries[id]; ok {
		return e.children.sorted()
	}
	return nil
}

// Dependencies returns the sorted ids of cards pointing to id.
// Returns nil for unknown ids and cards nobody points to.
func (s *Store) Dependencies(id string) []string {
	if e, ok := s.entries[id]; ok {
		return e.dependencies.sorted()
	}
	return nil
}

// Card returns a copy of the card with the given id.
func (s *Store) Card(id string) (Card, bool) {
	e, ok := s.entries[id]
	if !ok {
		return Card{}, false
	}
	return e.card.Clone(), true
}

// Has reports whether a card with the given id is known.
func (s *Store) Has(id string) bool {
	_, ok := s.entries[id]
	return ok
}

// Cards returns copies of all cards in board order.
func (s *Store) Cards() []Card {
	cards := make([]Card, len(s.order))
	for i, id := range s.order {
		cards[i] = s.entries[id].card.Clone()
	}
	return cards
}

// IDs returns all card ids in board order.
func (s *Store) IDs() []string { return slices.Clone(s.order) }

// Len returns the number of known cards.
func (s *Store) Len() int { return len(s.order) }

// EdgeCount returns the number of parent→child edges.
func (s *Store) EdgeCount() int {
	n := 0
	for _, e := range s.entries {
		n += len(e.children)
	}
	return n
}

// ResyncStats summarizes what a [Store.Resync] changed.
type ResyncStats struct {
	Added        int // cards that were not known before
	Removed      int // cards that disappeared from the board
	DroppedEdges int // edges lost because an endpoint disappeared
}

// Resync replaces the card set with cards, typically after the scraper saw
// the host board change. Surviving cards get fresh metadata and keep their
// edges among each other; edges touching a removed card are dropped from both
// endpoints. Board order follows the new card slice.
func (s *Store) Resync(cards []Card) ResyncStats {
	next := make(map[string]Card, len(cards))
	var order []string
	for _, c := range cards {
		if c.ID == "" {
			continue
		}
		if _, seen := next[c.ID]; !seen {
			order = append(order, c.ID)
		}
		next[c.ID] = c
	}

	var stats ResyncStats
	for _, id := range s.order {
		if _, keep := next[id]; keep {
			continue
		}
		stats.Removed++
		e := s.entries[id]
		for child := range e.children {
			if child != id {
				delete(s.entries[child].dependencies, id)
			}
			stats.DroppedEdges++
		}
		for parent := range e.dependencies {
			if parent == id {
				continue // self-loop already counted above
			}
			delete(s.entries[parent].children, id)
			stats.DroppedEdges++
		}
		delete(s.entries, id)
	}

	for _, id := range order {
		if e, ok := s.entries[id]; ok {
			e.card = next[id].Clone()
			continue
		}
		stats.Added++
		s.entries[id] = &entry{card: next[id].Clone(), children: set{}, dependencies: set{}}
	}
	s.order = order
	return stats
}
