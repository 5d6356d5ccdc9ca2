package board

import (
	"maps"
	"slices"
)

// Selection is the set of list names that participate in a rendered view.
// An empty selection means "every card". A Selection is independent of the
// dependency graph.
//
// The zero value is an empty selection ready to use.
type Selection struct {
	names set
}

// NewSelection creates a selection containing the given list names.
// Empty names are ignored.
func NewSelection(names ...string) Selection {
	s := Selection{}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add puts name into the selection.
func (s *Selection) Add(name string) {
	if name == "" {
		return
	}
	if s.names == nil {
		s.names = set{}
	}
	s.names[name] = struct{}{}
}

// Remove takes name out of the selection.
func (s *Selection) Remove(name string) { delete(s.names, name) }

// Toggle flips membership of name and reports whether it is now selected.
func (s *Selection) Toggle(name string) bool {
	if s.Has(name) {
		s.Remove(name)
		return false
	}
	s.Add(name)
	return s.Has(name)
}

// Has reports whether name is selected.
func (s Selection) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of selected lists.
func (s Selection) Len() int { return len(s.names) }

// IsEmpty reports whether nothing is selected, which means "all cards".
func (s Selection) IsEmpty() bool { return len(s.names) == 0 }

// Names returns the selected list names sorted alphabetically.
// The result is never nil.
func (s Selection) Names() []string {
	if len(s.names) == 0 {
		return []string{}
	}
	return slices.Sorted(maps.Keys(s.names))
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	return Selection{names: maps.Clone(s.names)}
}

// Equal reports whether both selections hold the same names.
func (s Selection) Equal(other Selection) bool {
	if s.Len() != other.Len() {
		return false
	}
	for n := range s.names {
		if !other.Has(n) {
			return false
		}
	}
	return true
}
