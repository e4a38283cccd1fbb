package roster

import "strings"

// Store holds the ordered home list. It is owned by a single event loop and
// is not safe for concurrent use.
type Store struct {
	entries     []Entry
	subscribers map[int]func([]Entry)
	nextID      int
}

// Initial returns a store seeded with SeedNames.
func Initial() *Store {
	return NewStore(SeedNames...)
}

// NewStore returns a store holding the given names in order. Names are taken
// verbatim; blank filtering only applies to Append.
func NewStore(names ...string) *Store {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name})
	}
	return &Store{entries: entries}
}

// Append adds name to the end of the list. Blank or whitespace-only names are
// ignored and Append reports false. The stored name is not trimmed.
func (s *Store) Append(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	s.entries = append(s.entries, Entry{Name: name})
	s.notify()
	return true
}

// Entries returns a snapshot of the list.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Names returns the entry names in display order.
func (s *Store) Names() []string {
	names := make([]string, len(s.entries))
	for i, entry := range s.entries {
		names[i] = entry.Name
	}
	return names
}

// Len reports how many entries the store holds.
func (s *Store) Len() int {
	return len(s.entries)
}

// Subscribe registers fn to receive a snapshot after every successful Append.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func([]Entry)) func() {
	if s.subscribers == nil {
		s.subscribers = make(map[int]func([]Entry))
	}
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

func (s *Store) notify() {
	if len(s.subscribers) == 0 {
		return
	}
	// Subscribers run in registration order.
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			fn(s.Entries())
		}
	}
}
