package session

import "context"

// PickAction describes what a [Session.Pick] did.
type PickAction int

const (
	// PickIgnored means the id is not on the board.
	PickIgnored PickAction = iota
	// PickArmed means the card is now waiting for a second pick.
	PickArmed
	// PickCancelled means the armed card was picked again (or the id was empty).
	PickCancelled
	// PickLinked means the picked card became the parent of the armed card.
	PickLinked
)

func (a PickAction) String() string {
	switch a {
	case PickArmed:
		return "armed"
	case PickCancelled:
		return "cancelled"
	case PickLinked:
		return "linked"
	default:
		return "ignored"
	}
}

// PickResult reports the outcome of a pick.
type PickResult struct {
	Action PickAction
	Parent string // picked card, set for PickLinked
	Child  string // armed card, set for PickLinked
}

// Pick drives the two-click linking flow. The first pick arms the dependent
// card; a second pick of another card sets it as the parent (picked→armed),
// autosaves, and disarms. Picking the armed card again, or an empty id,
// cancels.
func (s *Session) Pick(ctx context.Context, cardID string) (PickResult, error) {
	s.mu.Lock()
	switch {
	case cardID == "" || cardID == s.armed:
		s.armed = ""
		s.mu.Unlock()
		return PickResult{Action: PickCancelled}, nil
	case !s.store.Has(cardID):
		s.mu.Unlock()
		s.logger.Debug("pick ignored", "card", cardID)
		return PickResult{Action: PickIgnored}, nil
	case s.armed == "":
		s.armed = cardID
		s.mu.Unlock()
		return PickResult{Action: PickArmed}, nil
	}

	child := s.armed
	s.armed = ""
	s.mu.Unlock()

	res := PickResult{Action: PickLinked, Parent: cardID, Child: child}
	_, err := s.AddDependency(ctx, cardID, child)
	return res, err
}

// Armed returns the card waiting for a second pick, or "".
func (s *Session) Armed() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed
}
