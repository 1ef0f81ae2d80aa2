package catalog

import (
	"errors"
	"fmt"
	"sync"
)

var ErrDuplicateID = errors.New("duplicate property id")

// Store is the in-memory listing collection, the authoritative source of
// truth for the session. Insertion order is preserved; "newest" sorting and
// the featured set both rely on it.
type Store struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*Property
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*Property)}
}

// Seeded returns a store preloaded with the sample listings.
func Seeded() *Store {
	s := NewStore()
	for _, p := range sampleProperties() {
		if err := s.Insert(p); err != nil {
			// seed data is static; a collision here is a programming error
			panic(fmt.Sprintf("catalog seed: %v", err))
		}
	}
	return s
}

// Insert adds a new record. The id must be unique and the record must carry
// at least one image so it can render as a card.
func (s *Store) Insert(p Property) error {
	if p.ID == "" {
		return errors.New("property id required")
	}
	if len(p.Media.Images) == 0 {
		return errors.New("property must have at least one image")
	}
	if !ValidType(p.Type) {
		return fmt.Errorf("unknown property type %q", p.Type)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[p.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
	}
	cp := p
	s.byID[p.ID] = &cp
	s.order = append(s.order, p.ID)
	return nil
}

// All returns the records in insertion order. The slice and its elements are
// copies; callers may filter and reorder freely.
func (s *Store) All() []Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Property, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Get returns a copy of the record, or nil when the id is unknown. Absence
// is an expected outcome, not an error.
func (s *Store) Get(id string) *Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// BumpViews increments the view counter. Unknown ids are ignored.
func (s *Store) BumpViews(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.byID[id]; ok {
		p.Analytics.Views++
	}
}

// BumpSaves adjusts the save counter by delta, clamping at zero.
func (s *Store) BumpSaves(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return
	}
	p.Analytics.Saves += delta
	if p.Analytics.Saves < 0 {
		p.Analytics.Saves = 0
	}
}
