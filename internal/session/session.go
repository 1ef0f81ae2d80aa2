package session

import (
	"context"
	"sync"

	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/query"
)

// Querier is the slice of the query service a browsing session needs.
type Querier interface {
	Properties(ctx context.Context, c query.Criteria) ([]catalog.Property, error)
}

// Result is one delivered query outcome, tagged with the sequence number of
// the criteria change that produced it.
type Result struct {
	Seq        uint64
	Criteria   query.Criteria
	Properties []catalog.Property
	Err        error
}

// Session holds the active filter criteria for one browsing view. Every
// change re-issues the full criteria to the query service. Responses carry a
// monotonically increasing sequence number; a response that is not the
// latest issued request is discarded, so a slow stale query can never
// overwrite a newer result.
type Session struct {
	q       Querier
	mu      sync.Mutex
	crit    query.Criteria
	issued  uint64
	current []catalog.Property
	results chan Result
}

func New(q Querier) *Session {
	return &Session{
		q:       q,
		crit:    query.Defaults(),
		results: make(chan Result, 8),
	}
}

// Criteria returns the current filter values.
func (s *Session) Criteria() query.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.crit
}

// Current returns the last delivered result set.
func (s *Session) Current() []catalog.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Property(nil), s.current...)
}

// Results streams delivered (non-stale) query outcomes.
func (s *Session) Results() <-chan Result { return s.results }

// Update applies a criteria change and re-queries asynchronously with the
// full updated criteria. Returns the sequence number issued for the change.
func (s *Session) Update(ctx context.Context, mutate func(*query.Criteria)) uint64 {
	s.mu.Lock()
	mutate(&s.crit)
	s.issued++
	seq := s.issued
	crit := s.crit
	s.mu.Unlock()

	go s.run(ctx, seq, crit)
	return seq
}

// Reset restores the documented filter defaults and re-queries.
func (s *Session) Reset(ctx context.Context) uint64 {
	return s.Update(ctx, func(c *query.Criteria) { *c = query.Defaults() })
}

func (s *Session) run(ctx context.Context, seq uint64, crit query.Criteria) {
	props, err := s.q.Properties(ctx, crit)

	s.mu.Lock()
	if seq != s.issued {
		// a newer request is in flight or already delivered
		s.mu.Unlock()
		return
	}
	if err == nil {
		s.current = props
	}
	s.mu.Unlock()

	res := Result{Seq: seq, Criteria: crit, Properties: props, Err: err}
	select {
	case s.results <- res:
	default:
		// consumer is behind: drop the oldest queued result and retry once
		select {
		case <-s.results:
		default:
		}
		select {
		case s.results <- res:
		default:
		}
	}
}
