package favorites

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/yourorg/listing-api/internal/events"
)

// StorageKey is the single entry the favorite set lives under, as a
// JSON-encoded list of property ids in insertion order.
const StorageKey = "favorites"

// KV is the minimal persistence surface the store needs. Get reports absence
// via ok=false rather than an error.
type KV interface {
	Get(ctx context.Context, key string) (val string, ok bool, err error)
	Set(ctx context.Context, key string, val string) error
}

// Store holds the user's favorited property ids for the lifetime of the
// process. Mutations are idempotent and written through to the KV after
// every change; persistence failures are logged and swallowed, so the
// in-memory set stays correct for the session either way.
type Store struct {
	mu     sync.Mutex
	kv     KV
	ids    []string
	member map[string]int // id -> index into ids
	pub    events.Publisher
}

type Option func(*Store)

func WithPublisher(pub events.Publisher) Option {
	return func(s *Store) { s.pub = pub }
}

// Load reads the persisted set once at startup. A missing entry, a read
// error, or corrupt JSON all fall back to an empty set; Load never fails.
func Load(ctx context.Context, kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, member: make(map[string]int)}
	for _, o := range opts {
		o(s)
	}
	raw, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		slog.Warn("favorites: load failed, starting empty", "err", err)
		return s
	}
	if !ok {
		return s
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		slog.Warn("favorites: corrupt persisted set, starting empty", "err", err)
		return s
	}
	for _, id := range ids {
		if _, dup := s.member[id]; dup {
			continue
		}
		s.member[id] = len(s.ids)
		s.ids = append(s.ids, id)
	}
	return s
}

// Add marks id as favorited. No-op if already present.
func (s *Store) Add(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.member[id]; ok {
		return
	}
	s.addLocked(ctx, id)
}

// Remove unmarks id. No-op if absent.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.member[id]; !ok {
		return
	}
	s.removeLocked(ctx, id)
}

// Toggle flips membership and returns the new state.
func (s *Store) Toggle(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.member[id]; ok {
		s.removeLocked(ctx, id)
		return false
	}
	s.addLocked(ctx, id)
	return true
}

func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.member[id]
	return ok
}

// IDs returns the favorited ids in insertion order.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Store) addLocked(ctx context.Context, id string) {
	s.member[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.persistLocked(ctx)
	if s.pub != nil {
		s.pub.Publish(ctx, events.Activity{Kind: events.KindFavoriteChanged, PropertyID: id, Favorited: true})
	}
}

func (s *Store) removeLocked(ctx context.Context, id string) {
	idx := s.member[id]
	s.ids = append(s.ids[:idx], s.ids[idx+1:]...)
	delete(s.member, id)
	for i := idx; i < len(s.ids); i++ {
		s.member[s.ids[i]] = i
	}
	s.persistLocked(ctx)
	if s.pub != nil {
		s.pub.Publish(ctx, events.Activity{Kind: events.KindFavoriteChanged, PropertyID: id, Favorited: false})
	}
}

func (s *Store) persistLocked(ctx context.Context) {
	b, err := json.Marshal(s.ids)
	if err != nil {
		slog.Warn("favorites: encode failed, skipping persist", "err", err)
		return
	}
	if err := s.kv.Set(ctx, StorageKey, string(b)); err != nil {
		slog.Warn("favorites: persist failed, set kept in memory only", "err", err)
	}
}
