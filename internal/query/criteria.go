package query

import (
	"sort"
	"strings"

	"github.com/yourorg/listing-api/internal/catalog"
)

type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortPopular   SortOrder = "popular"
)

// Criteria is the full set of user-selected constraints. Zero values mean
// "not applied"; every provided field narrows the result conjunctively.
type Criteria struct {
	City      string
	MinPrice  int
	MaxPrice  int
	Type      catalog.PropertyType
	Bedrooms  int
	Bathrooms int
	Verified  bool
	SortBy    SortOrder
}

// Defaults are the documented reset values of the filter sidebar.
func Defaults() Criteria {
	return Criteria{
		MinPrice:  0,
		MaxPrice:  10_000_000,
		Type:      "",
		Bedrooms:  0,
		Bathrooms: 0,
		Verified:  false,
		SortBy:    SortNewest,
	}
}

// Matches reports whether p satisfies every provided constraint.
func (c Criteria) Matches(p catalog.Property) bool {
	if c.Type != "" && p.Type != c.Type {
		return false
	}
	if c.MinPrice > 0 && p.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.Price > c.MaxPrice {
		return false
	}
	if c.Bedrooms > 0 && p.Bedrooms < c.Bedrooms {
		return false
	}
	if c.Bathrooms > 0 && p.Bathrooms < c.Bathrooms {
		return false
	}
	if c.City != "" && !strings.Contains(strings.ToLower(p.Location.City), strings.ToLower(c.City)) {
		return false
	}
	if c.Verified && !p.Verified {
		return false
	}
	return true
}

// applySort orders the filtered records in place. Newest keeps store order;
// ties preserve the incoming order.
func applySort(ps []catalog.Property, by SortOrder) {
	switch by {
	case SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case SortPopular:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Analytics.Popularity > ps[j].Analytics.Popularity })
	default:
		// newest: the store is insertion-ordered already
	}
}
