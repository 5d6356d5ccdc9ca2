package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ListPickModel - Interactive list selection
// =============================================================================

// ListItem is one board list offered for selection.
type ListItem struct {
	Name  string
	Cards int
	Color string
}

// ListPickModel is the bubbletea model for choosing which lists a view shows.
type ListPickModel struct {
	Items     []ListItem
	Checked   map[string]bool
	Cursor    int
	Height    int
	Offset    int
	Confirmed bool
}

// NewListPickModel creates a model with the names in selected pre-checked.
func NewListPickModel(items []ListItem, selected []string) ListPickModel {
	checked := make(map[string]bool, len(selected))
	for _, name := range selected {
		checked[name] = true
	}
	return ListPickModel{
		Items:   items,
		Checked: checked,
		Height:  15,
	}
}

func (m ListPickModel) Init() tea.Cmd {
	return nil
}

func (m ListPickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space", "x":
			if len(m.Items) > 0 {
				name := m.Items[m.Cursor].Name
				m.Checked[name] = !m.Checked[name]
			}
		case "a":
			m.Checked = map[string]bool{}
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 7
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ListPickModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Lists"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all cards  ⏎ apply  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Items) {
		end = len(m.Items)
	}

	for i := m.Offset; i < end; i++ {
		it := m.Items[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		box := "[ ]"
		if m.Checked[it.Name] {
			box = "[x]"
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("■")
		line := fmt.Sprintf("%s%s %s %-30s", cursor, box, swatch, it.Name)
		count := listDimStyle.Render(fmt.Sprintf("%d cards", it.Cards))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString(" " + count + "\n")
	}

	b.WriteString("\n")
	if n := len(m.SelectedNames()); n == 0 {
		b.WriteString(listDimStyle.Render("  nothing selected: every card is shown"))
	} else {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d of %d lists selected", n, len(m.Items))))
	}

	return b.String()
}

// SelectedNames returns the checked list names in item order.
func (m ListPickModel) SelectedNames() []string {
	var names []string
	for _, it := range m.Items {
		if m.Checked[it.Name] {
			names = append(names, it.Name)
		}
	}
	return names
}
