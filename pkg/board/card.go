package board

import "slices"

// Label is a colored tag attached to a card on the host board.
type Label struct {
	Text    string `json:"text"`
	Color   string `json:"color,omitempty"`
	Classes string `json:"classes,omitempty"`
}

// Card is the normalized representation of a board card as produced by the
// external scraper. Apart from ID, every field is display payload that the
// engine copies around but never interprets.
//
// Dependency edges are not part of Card: they are owned by [Store], which keeps
// both directions in lockstep.
type Card struct {
	ID         string   `json:"id"`                   // Stable for a session (e.g. a card shortlink)
	Name       string   `json:"name"`                 // Card title without number or difficulty
	Number     string   `json:"number,omitempty"`     // Human-facing card number
	ListName   string   `json:"listName"`             // Group the card currently sits in
	Labels     []Label  `json:"labels,omitempty"`     // Colored tags
	Members    []string `json:"members,omitempty"`    // Assigned member names
	Difficulty string   `json:"difficulty,omitempty"` // Estimate parsed from the title
	Href       string   `json:"href,omitempty"`       // Link back to the host board
}

// Clone returns a deep copy of the card so callers can hand it out without
// exposing the store's slices.
func (c Card) Clone() Card {
	c.Labels = slices.Clone(c.Labels)
	c.Members = slices.Clone(c.Members)
	return c
}

// List is a group descriptor supplied by the scraper. Lists partition cards
// for filtering only; they are not part of the dependency graph.
type List struct {
	Name string `json:"name"`
}

// Board is the document the scraper hands to the engine: every list and card
// currently visible on the host board, in board order.
type Board struct {
	Lists []List `json:"lists"`
	Cards []Card `json:"cards"`
}

// ListNames returns the list names in board order.
func (b Board) ListNames() []string {
	names := make([]string, len(b.Lists))
	for i, l := range b.Lists {
		names[i] = l.Name
	}
	return names
}
