package geo

import (
	"testing"

	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/listing-api/internal/catalog"
)

func propAt(id string, lat, lng float64) catalog.Property {
	return catalog.Property{
		ID:       id,
		Location: catalog.Location{Lat: lat, Lng: lng},
	}
}

func TestPins(t *testing.T) {
	t.Run("co-located listings share a pin", func(t *testing.T) {
		ps := []catalog.Property{
			propAt("a", 34.0522, -118.2437),
			propAt("b", 34.0522, -118.2437), // same building
			propAt("c", 40.7128, -74.0060),
		}
		pins := Pins(ps, 5)
		require.Len(t, pins, 2)
		assert.Equal(t, 2, pins[0].Count)
		assert.Equal(t, []string{"a", "b"}, pins[0].PropertyIDs)
		assert.Equal(t, []string{"c"}, pins[1].PropertyIDs)
	})

	t.Run("pin centers on the cell", func(t *testing.T) {
		ps := []catalog.Property{propAt("a", 34.0522, -118.2437)}
		pins := Pins(ps, 5)
		require.Len(t, pins, 1)
		wantLat, wantLng := geohash.DecodeCenter(pins[0].Cell)
		assert.Equal(t, wantLat, pins[0].Lat)
		assert.Equal(t, wantLng, pins[0].Lng)
	})

	t.Run("higher precision separates close listings", func(t *testing.T) {
		ps := []catalog.Property{
			propAt("a", 34.0522, -118.2437),
			propAt("b", 34.0722, -118.2637),
		}
		coarse := Pins(ps, 3)
		fine := Pins(ps, 8)
		assert.Len(t, coarse, 1)
		assert.Len(t, fine, 2)
	})

	t.Run("out-of-range precision falls back to default", func(t *testing.T) {
		ps := []catalog.Property{propAt("a", 34.0522, -118.2437)}
		pins := Pins(ps, 40)
		require.Len(t, pins, 1)
		assert.Len(t, pins[0].Cell, DefaultPrecision)
	})

	t.Run("seed catalog is fully covered", func(t *testing.T) {
		pins := Pins(catalog.Seeded().All(), 0)
		total := 0
		for _, pin := range pins {
			total += pin.Count
		}
		assert.Equal(t, 6, total)
	})
}
