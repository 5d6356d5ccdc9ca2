package session

import (
	"context"

	"github.com/matzehuels/cardgraph/pkg/debounce"
)

// ListColor returns the committed color of a list, or [DefaultListColor].
func (s *Session) ListColor(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorLocked(name)
}

func (s *Session) colorLocked(name string) string {
	if c, ok := s.colors[name]; ok {
		return c
	}
	return DefaultListColor
}

// SetListColor schedules color for list name. Repeated calls within the
// debounce window replace each other; the last one is committed once the
// window passes quietly, if it differs from the current color.
func (s *Session) SetListColor(name, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	q, ok := s.colorQ[name]
	if !ok {
		epoch := s.epoch
		q = debounce.New(s.delay, func(c string) { s.commitColor(epoch, name, c) })
		s.colorQ[name] = q
	}
	q.Push(color)
}

// FlushColors commits every pending color now and reports how many lists
// had one pending.
func (s *Session) FlushColors() int {
	s.mu.Lock()
	queues := make([]*debounce.Debouncer[string], 0, len(s.colorQ))
	for _, q := range s.colorQ {
		queues = append(queues, q)
	}
	s.mu.Unlock()

	n := 0
	for _, q := range queues {
		if q.Flush() {
			n++
		}
	}
	return n
}

// PendingColors reports whether any list color is waiting to be committed.
func (s *Session) PendingColors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.colorQ {
		if q.Pending() {
			return true
		}
	}
	return false
}

// commitColor applies color unless the session was closed or restored since
// the debouncer for epoch was created.
func (s *Session) commitColor(epoch uint64, name, color string) {
	s.mu.Lock()
	if s.closed || epoch != s.epoch || s.colorLocked(name) == color {
		s.mu.Unlock()
		return
	}
	s.colors[name] = color
	s.mu.Unlock()

	s.logger.Debug("list color committed", "list", name, "color", color)
	_ = s.autosave(context.Background())
}
