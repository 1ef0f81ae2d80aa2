package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yourorg/listing-api/internal/canon"
	"github.com/yourorg/listing-api/internal/catalog"
)

// Listing is the wire shape of one feed entry. It mirrors the catalog model
// but arrives untrusted: ids may be missing and enum values unchecked.
type Listing struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Price       int                   `json:"price"`
	Location    catalog.Location      `json:"location"`
	Area        int                   `json:"area"`
	Type        string                `json:"type"`
	Bedrooms    int                   `json:"bedrooms"`
	Bathrooms   int                   `json:"bathrooms"`
	Floors      int                   `json:"floors"`
	BuiltYear   int                   `json:"builtYear"`
	Facing      string                `json:"facing"`
	RoadAccess  string                `json:"roadAccess"`
	Amenities   catalog.Amenities     `json:"amenities"`
	Media       catalog.Media         `json:"media"`
	Verified    bool                  `json:"verified"`
	Agent       catalog.Agent         `json:"agent"`
	Description string                `json:"description"`
	History     []catalog.PricePoint  `json:"priceHistory"`
}

// MapListing validates and converts a feed entry into a catalog record.
func MapListing(l Listing) (catalog.Property, error) {
	var p catalog.Property
	if l.Title == "" {
		return p, fmt.Errorf("listing without title")
	}
	if l.Price <= 0 {
		return p, fmt.Errorf("listing %q: non-positive price", l.Title)
	}
	if len(l.Media.Images) == 0 {
		return p, fmt.Errorf("listing %q: no images", l.Title)
	}
	t := catalog.PropertyType(l.Type)
	if !catalog.ValidType(t) {
		return p, fmt.Errorf("listing %q: unknown type %q", l.Title, l.Type)
	}
	id := l.ID
	if id == "" {
		id = "prop-" + uuid.NewString()
	}
	p = catalog.Property{
		ID:           id,
		Title:        l.Title,
		Price:        l.Price,
		Location:     l.Location,
		Area:         l.Area,
		Type:         t,
		Bedrooms:     l.Bedrooms,
		Bathrooms:    l.Bathrooms,
		Floors:       l.Floors,
		BuiltYear:    l.BuiltYear,
		Facing:       catalog.Facing(l.Facing),
		RoadAccess:   l.RoadAccess,
		Amenities:    l.Amenities,
		Media:        l.Media,
		Verified:     l.Verified,
		Agent:        l.Agent,
		Description:  l.Description,
		PriceHistory: l.History,
	}
	return p, nil
}

// Import fetches the feed and inserts new listings into the store. Entries
// already present, by id or by canonical address, are skipped, as are
// malformed entries. Returns the number of records added.
func Import(ctx context.Context, c *Client, store *catalog.Store) (int, error) {
	listings, err := c.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	known := make(map[string]bool)
	for _, p := range store.All() {
		loc := p.Location
		if key := canon.Key(loc.Address, loc.City, loc.State, loc.ZipCode); key != "" {
			known[key] = true
		}
	}
	added := 0
	for _, l := range listings {
		p, err := MapListing(l)
		if err != nil {
			slog.Warn("feed: skipping listing", "err", err)
			continue
		}
		loc := p.Location
		key := canon.Key(loc.Address, loc.City, loc.State, loc.ZipCode)
		if key != "" && known[key] {
			continue
		}
		if err := store.Insert(p); err != nil {
			slog.Warn("feed: insert failed", "id", p.ID, "err", err)
			continue
		}
		if key != "" {
			known[key] = true
		}
		added++
	}
	return added, nil
}
