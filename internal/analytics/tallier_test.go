package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/events"
)

func tallyStore(t *testing.T) *catalog.Store {
	t.Helper()
	s := catalog.NewStore()
	for _, p := range []catalog.Property{
		{ID: "p-1", Title: "One", Type: catalog.TypeHouse, Media: catalog.Media{Images: []string{"i"}}},
		{ID: "p-2", Title: "Two", Type: catalog.TypeCondo, Media: catalog.Media{Images: []string{"i"}}},
	} {
		require.NoError(t, s.Insert(p))
	}
	return s
}

func TestTallierApply(t *testing.T) {
	t.Run("views accumulate per property", func(t *testing.T) {
		store := tallyStore(t)
		tal := NewTallier(store, events.NewInMemory(4))

		tal.Apply(events.Activity{Kind: events.KindPropertyViewed, PropertyID: "p-1"})
		tal.Apply(events.Activity{Kind: events.KindPropertyViewed, PropertyID: "p-1"})
		tal.Apply(events.Activity{Kind: events.KindPropertyViewed, PropertyID: "p-2"})

		assert.Equal(t, 2, store.Get("p-1").Analytics.Views)
		assert.Equal(t, 1, store.Get("p-2").Analytics.Views)
	})

	t.Run("favorite transitions adjust saves once", func(t *testing.T) {
		store := tallyStore(t)
		tal := NewTallier(store, events.NewInMemory(4))

		tal.Apply(events.Activity{Kind: events.KindFavoriteChanged, PropertyID: "p-1", Favorited: true})
		assert.Equal(t, 1, store.Get("p-1").Analytics.Saves)

		// repeating the same state is a no-op
		tal.Apply(events.Activity{Kind: events.KindFavoriteChanged, PropertyID: "p-1", Favorited: true})
		assert.Equal(t, 1, store.Get("p-1").Analytics.Saves)

		tal.Apply(events.Activity{Kind: events.KindFavoriteChanged, PropertyID: "p-1", Favorited: false})
		assert.Equal(t, 0, store.Get("p-1").Analytics.Saves)

		tal.Apply(events.Activity{Kind: events.KindFavoriteChanged, PropertyID: "p-1", Favorited: false})
		assert.Equal(t, 0, store.Get("p-1").Analytics.Saves)
	})

	t.Run("unfavorite without prior favorite stays at zero", func(t *testing.T) {
		store := tallyStore(t)
		tal := NewTallier(store, events.NewInMemory(4))

		tal.Apply(events.Activity{Kind: events.KindFavoriteChanged, PropertyID: "p-2", Favorited: false})
		assert.Equal(t, 0, store.Get("p-2").Analytics.Saves)
	})

	t.Run("inquiries count per property", func(t *testing.T) {
		store := tallyStore(t)
		tal := NewTallier(store, events.NewInMemory(4))

		tal.Apply(events.Activity{Kind: events.KindInquiryCreated, PropertyID: "p-1"})
		tal.Apply(events.Activity{Kind: events.KindInquiryCreated, PropertyID: "p-1"})

		assert.Equal(t, 2, tal.Inquiries("p-1"))
		assert.Equal(t, 0, tal.Inquiries("p-2"))
	})
}

func TestTallierSummary(t *testing.T) {
	store := tallyStore(t)
	tal := NewTallier(store, events.NewInMemory(4))

	tal.Apply(events.Activity{Kind: events.KindPropertyViewed, PropertyID: "p-1"})
	tal.Apply(events.Activity{Kind: events.KindPropertyViewed, PropertyID: "p-2"})
	tal.Apply(events.Activity{Kind: events.KindPropertyViewed, PropertyID: "p-2"})
	tal.Apply(events.Activity{Kind: events.KindFavoriteChanged, PropertyID: "p-1", Favorited: true})
	tal.Apply(events.Activity{Kind: events.KindFavoriteChanged, PropertyID: "p-2", Favorited: true})
	tal.Apply(events.Activity{Kind: events.KindFavoriteChanged, PropertyID: "p-2", Favorited: false})
	tal.Apply(events.Activity{Kind: events.KindInquiryCreated, PropertyID: "p-1"})

	sum := tal.Summary()
	require.Len(t, sum.Properties, 2)

	assert.Equal(t, "p-1", sum.Properties[0].ID)
	assert.Equal(t, "One", sum.Properties[0].Title)
	assert.Equal(t, 1, sum.Properties[0].Views)
	assert.Equal(t, 1, sum.Properties[0].Saves)
	assert.Equal(t, 1, sum.Properties[0].Inquiries)

	assert.Equal(t, 2, sum.Properties[1].Views)
	assert.Equal(t, 0, sum.Properties[1].Saves)

	assert.Equal(t, 3, sum.TotalViews)
	assert.Equal(t, 1, sum.TotalSaves)
	assert.Equal(t, 1, sum.TotalInquiries)
	assert.Equal(t, 1, sum.FavoritedActive)
}
