package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/geo"
)

type MapDeps struct {
	Store *catalog.Store
}

// RegisterMap serves pins for the map view, clustered by geohash cell.
func RegisterMap(r chi.Router, d MapDeps) {
	r.Get("/map/pins", func(w http.ResponseWriter, req *http.Request) {
		precision := uint(geo.DefaultPrecision)
		if v := req.URL.Query().Get("precision"); v != "" {
			if i, err := strconv.Atoi(v); err == nil && i > 0 {
				precision = uint(i)
			}
		}
		pins := geo.Pins(d.Store.All(), precision)
		render.JSON(w, req, map[string]any{"ok": true, "count": len(pins), "pins": pins})
	})
}
