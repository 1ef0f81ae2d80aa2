package analytics

import (
	"context"
	"sync"

	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/events"
)

// PropertyPerformance is one row of the dashboard chart data.
type PropertyPerformance struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Views     int    `json:"views"`
	Saves     int    `json:"saves"`
	Inquiries int    `json:"inquiries"`
}

type Summary struct {
	Properties      []PropertyPerformance `json:"properties"`
	TotalViews      int                   `json:"totalViews"`
	TotalSaves      int                   `json:"totalSaves"`
	TotalInquiries  int                   `json:"totalInquiries"`
	FavoritedActive int                   `json:"favoritedActive"`
}

// Tallier consumes listing activity events and keeps the catalog counters
// and per-property inquiry tallies current. Dashboard numbers derive from
// these instead of placeholder randomness.
type Tallier struct {
	store *catalog.Store
	pub   events.Publisher

	mu        sync.Mutex
	inquiries map[string]int
	favorited map[string]bool
}

func NewTallier(store *catalog.Store, pub events.Publisher) *Tallier {
	return &Tallier{
		store:     store,
		pub:       pub,
		inquiries: make(map[string]int),
		favorited: make(map[string]bool),
	}
}

// Run consumes events until ctx is done. Meant to be started once alongside
// the server.
func (t *Tallier) Run(ctx context.Context) {
	sub := t.pub.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-sub:
			t.Apply(evt)
		}
	}
}

// Apply folds a single event into the tallies.
func (t *Tallier) Apply(evt events.Activity) {
	switch evt.Kind {
	case events.KindPropertyViewed:
		t.store.BumpViews(evt.PropertyID)
	case events.KindFavoriteChanged:
		t.mu.Lock()
		was := t.favorited[evt.PropertyID]
		t.favorited[evt.PropertyID] = evt.Favorited
		t.mu.Unlock()
		if evt.Favorited && !was {
			t.store.BumpSaves(evt.PropertyID, 1)
		} else if !evt.Favorited && was {
			t.store.BumpSaves(evt.PropertyID, -1)
		}
	case events.KindInquiryCreated:
		t.mu.Lock()
		t.inquiries[evt.PropertyID]++
		t.mu.Unlock()
	}
}

// Inquiries returns the inquiry count recorded for id.
func (t *Tallier) Inquiries(id string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inquiries[id]
}

// Summary snapshots per-property performance across the catalog.
func (t *Tallier) Summary() Summary {
	t.mu.Lock()
	inq := make(map[string]int, len(t.inquiries))
	for k, v := range t.inquiries {
		inq[k] = v
	}
	active := 0
	for _, on := range t.favorited {
		if on {
			active++
		}
	}
	t.mu.Unlock()

	var sum Summary
	sum.FavoritedActive = active
	for _, p := range t.store.All() {
		row := PropertyPerformance{
			ID:        p.ID,
			Title:     p.Title,
			Views:     p.Analytics.Views,
			Saves:     p.Analytics.Saves,
			Inquiries: inq[p.ID],
		}
		sum.Properties = append(sum.Properties, row)
		sum.TotalViews += row.Views
		sum.TotalSaves += row.Saves
		sum.TotalInquiries += row.Inquiries
	}
	return sum
}
