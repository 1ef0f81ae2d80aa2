package query

import (
	"context"
	"math"
	"time"

	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/events"
)

// Delays simulate per-operation backend latency, matching the mock API the
// UI was built against. Zero values skip the pause entirely.
type Delays struct {
	Query    time.Duration
	Lookup   time.Duration
	Similar  time.Duration
	Featured time.Duration
	Stats    time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Query:    300 * time.Millisecond,
		Lookup:   200 * time.Millisecond,
		Similar:  250 * time.Millisecond,
		Featured: 200 * time.Millisecond,
		Stats:    150 * time.Millisecond,
	}
}

// MarketStats summarizes the catalog for the home page. SoldThisMonth and
// AvgDaysOnMarket have no backing data and stay fixed placeholders.
type MarketStats struct {
	TotalListings   int `json:"totalListings"`
	AvgPrice        int `json:"avgPrice"`
	SoldThisMonth   int `json:"soldThisMonth"`
	AvgDaysOnMarket int `json:"avgDaysOnMarket"`
}

const (
	placeholderSoldThisMonth   = 12
	placeholderAvgDaysOnMarket = 28
)

type Option func(*Service)

func WithDelays(d Delays) Option {
	return func(s *Service) { s.delays = d }
}

func WithPublisher(pub events.Publisher) Option {
	return func(s *Service) { s.pub = pub }
}

// Service answers read queries over the catalog. Operations suspend for the
// configured delay (cancellable via ctx) and otherwise cannot fail: absence
// is a nil result, never an error.
type Service struct {
	store  *catalog.Store
	pub    events.Publisher
	delays Delays
}

func NewService(store *catalog.Store, opts ...Option) *Service {
	s := &Service{store: store, delays: DefaultDelays()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Properties returns all records matching c, ordered per c.SortBy.
func (s *Service) Properties(ctx context.Context, c Criteria) ([]catalog.Property, error) {
	if err := pause(ctx, s.delays.Query); err != nil {
		return nil, err
	}
	all := s.store.All()
	out := make([]catalog.Property, 0, len(all))
	for _, p := range all {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	applySort(out, c.SortBy)
	return out, nil
}

// PropertyByID returns the record or nil when the id is unknown. A found
// record counts as a view.
func (s *Service) PropertyByID(ctx context.Context, id string) (*catalog.Property, error) {
	if err := pause(ctx, s.delays.Lookup); err != nil {
		return nil, err
	}
	p := s.store.Get(id)
	if p != nil && s.pub != nil {
		s.pub.Publish(ctx, events.Activity{Kind: events.KindPropertyViewed, PropertyID: id})
	}
	return p, nil
}

// SimilarProperties returns up to count records of the same type, excluding
// the source record itself. Unknown ids yield an empty result.
func (s *Service) SimilarProperties(ctx context.Context, id string, count int) ([]catalog.Property, error) {
	if err := pause(ctx, s.delays.Similar); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = 3
	}
	src := s.store.Get(id)
	if src == nil {
		return []catalog.Property{}, nil
	}
	out := make([]catalog.Property, 0, count)
	for _, p := range s.store.All() {
		if p.ID == id || p.Type != src.Type {
			continue
		}
		out = append(out, p)
		if len(out) == count {
			break
		}
	}
	return out, nil
}

const featuredCount = 4

// FeaturedProperties returns the first records of the catalog for the home
// page hero grid.
func (s *Service) FeaturedProperties(ctx context.Context) ([]catalog.Property, error) {
	if err := pause(ctx, s.delays.Featured); err != nil {
		return nil, err
	}
	all := s.store.All()
	if len(all) > featuredCount {
		all = all[:featuredCount]
	}
	return all, nil
}

// MarketStats computes the listing count and mean price over the catalog.
func (s *Service) MarketStats(ctx context.Context) (MarketStats, error) {
	if err := pause(ctx, s.delays.Stats); err != nil {
		return MarketStats{}, err
	}
	all := s.store.All()
	stats := MarketStats{
		TotalListings:   len(all),
		SoldThisMonth:   placeholderSoldThisMonth,
		AvgDaysOnMarket: placeholderAvgDaysOnMarket,
	}
	if len(all) == 0 {
		return stats, nil
	}
	sum := 0
	for _, p := range all {
		sum += p.Price
	}
	stats.AvgPrice = int(math.Round(float64(sum) / float64(len(all))))
	return stats, nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
