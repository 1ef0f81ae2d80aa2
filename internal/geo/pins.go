package geo

import (
	"github.com/mmcloughlin/geohash"

	"github.com/yourorg/listing-api/internal/catalog"
)

// Pin is a map marker covering every listing that falls into one geohash
// cell at the requested precision.
type Pin struct {
	Cell        string   `json:"cell"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Count       int      `json:"count"`
	PropertyIDs []string `json:"propertyIds"`
}

const DefaultPrecision = 5

// Pins groups listings into geohash cells. Cells appear in first-seen order
// of the input, each centered on its cell rather than on any single listing.
func Pins(ps []catalog.Property, precision uint) []Pin {
	if precision == 0 || precision > 12 {
		precision = DefaultPrecision
	}
	index := make(map[string]int)
	var out []Pin
	for _, p := range ps {
		cell := geohash.EncodeWithPrecision(p.Location.Lat, p.Location.Lng, precision)
		i, ok := index[cell]
		if !ok {
			lat, lng := geohash.DecodeCenter(cell)
			index[cell] = len(out)
			out = append(out, Pin{Cell: cell, Lat: lat, Lng: lng})
			i = len(out) - 1
		}
		out[i].Count++
		out[i].PropertyIDs = append(out[i].PropertyIDs, p.ID)
	}
	return out
}
