package board

import (
	"reflect"
	"testing"
)

func TestSelectionZeroValue(t *testing.T) {
	var s Selection
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatal("zero Selection should be empty")
	}
	if got := s.Names(); got == nil || len(got) != 0 {
		t.Errorf("Names() = %#v, want empty non-nil slice", got)
	}
	s.Add("Todo")
	if !s.Has("Todo") {
		t.Error("Add on zero value did not stick")
	}
}

func TestSelectionToggle(t *testing.T) {
	tests := []struct {
		name    string
		start   []string
		toggle  []string
		want    []string
		lastNow bool
	}{
		{"add one", nil, []string{"Todo"}, []string{"Todo"}, true},
		{"add then remove", nil, []string{"Todo", "Todo"}, []string{}, false},
		{"sorted output", nil, []string{"Zeta", "alpha", "Beta"}, []string{"Beta", "Zeta", "alpha"}, true},
		{"remove existing", []string{"A", "B"}, []string{"A"}, []string{"B"}, false},
		{"empty name ignored", nil, []string{""}, []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection(tt.start...)
			var now bool
			for _, n := range tt.toggle {
				now = s.Toggle(n)
			}
			if now != tt.lastNow {
				t.Errorf("last Toggle() = %v, want %v", now, tt.lastNow)
			}
			if got := s.Names(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectionCloneAndEqual(t *testing.T) {
	a := NewSelection("Todo", "Done")
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone should equal original")
	}

	b.Remove("Todo")
	if a.Equal(b) {
		t.Error("selections with different names compare equal")
	}
	if !a.Has("Todo") {
		t.Error("mutating clone changed original")
	}

	if !NewSelection().Equal(Selection{}) {
		t.Error("empty selections should be equal")
	}
	if NewSelection("A", "B").Equal(NewSelection("A", "C")) {
		t.Error("same size, different names compare equal")
	}
}
