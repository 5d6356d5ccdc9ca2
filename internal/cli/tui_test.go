package cli

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pickItems() []ListItem {
	return []ListItem{
		{Name: "Todo", Cards: 3, Color: "#ffffff"},
		{Name: "Doing", Cards: 1, Color: "#ffcc00"},
		{Name: "Done", Cards: 0, Color: "#ffffff"},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m ListPickModel, keys ...string) (ListPickModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(ListPickModel)
	}
	return m, cmd
}

func TestListPickModelToggle(t *testing.T) {
	m := NewListPickModel(pickItems(), []string{"Done"})

	m, _ = press(m, "down", " ", "j", "x")
	if got := m.SelectedNames(); !reflect.DeepEqual(got, []string{"Doing"}) {
		t.Errorf("SelectedNames() = %v, want [Doing]", got)
	}
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}

	m, cmd := press(m, "enter")
	if !m.Confirmed {
		t.Error("enter did not confirm")
	}
	if cmd == nil {
		t.Error("enter should quit")
	}
}

func TestListPickModelCursorBounds(t *testing.T) {
	m := NewListPickModel(pickItems(), nil)

	m, _ = press(m, "up", "k")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after moving up at top, want 0", m.Cursor)
	}
	m, _ = press(m, "down", "down", "down", "down")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d after moving past the end, want 2", m.Cursor)
	}
}

func TestListPickModelClearAndCancel(t *testing.T) {
	m := NewListPickModel(pickItems(), []string{"Todo", "Doing"})

	m, _ = press(m, "a")
	if got := m.SelectedNames(); len(got) != 0 {
		t.Errorf("SelectedNames() = %v after clearing, want none", got)
	}

	m, _ = press(m, "esc")
	if m.Confirmed {
		t.Error("esc should not confirm")
	}
}

func TestListPickModelEmpty(t *testing.T) {
	m := NewListPickModel(nil, nil)
	m, _ = press(m, " ", "down")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	if !strings.Contains(m.View(), "every card is shown") {
		t.Error("View() should explain that nothing selected shows every card")
	}
}

func TestListPickModelView(t *testing.T) {
	m := NewListPickModel(pickItems(), []string{"Doing"})
	out := m.View()

	for _, want := range []string{"Select Lists", "Todo", "Doing", "Done", "[x]", "1 of 3 lists selected"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
