package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/favorites"
)

type FavoritesDeps struct {
	Favorites *favorites.Store
	Store     *catalog.Store
}

func RegisterFavorites(r chi.Router, d FavoritesDeps) {
	// ids plus the hydrated records for the favorites page
	r.Get("/favorites", func(w http.ResponseWriter, req *http.Request) {
		ids := d.Favorites.IDs()
		props := make([]catalog.Property, 0, len(ids))
		for _, id := range ids {
			if p := d.Store.Get(id); p != nil {
				props = append(props, *p)
			}
		}
		render.JSON(w, req, map[string]any{"ok": true, "ids": ids, "count": len(props), "properties": props})
	})

	r.Put("/favorites/{propertyID}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "propertyID")
		if !knownProperty(w, req, d, id) {
			return
		}
		d.Favorites.Add(req.Context(), id)
		render.JSON(w, req, map[string]any{"ok": true, "id": id, "favorited": true})
	})

	r.Delete("/favorites/{propertyID}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "propertyID")
		d.Favorites.Remove(req.Context(), id)
		render.JSON(w, req, map[string]any{"ok": true, "id": id, "favorited": false})
	})

	r.Post("/favorites/{propertyID}/toggle", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "propertyID")
		if !knownProperty(w, req, d, id) {
			return
		}
		on := d.Favorites.Toggle(req.Context(), id)
		render.JSON(w, req, map[string]any{"ok": true, "id": id, "favorited": on})
	})

	r.Get("/favorites/{propertyID}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "propertyID")
		render.JSON(w, req, map[string]any{"ok": true, "id": id, "favorited": d.Favorites.Contains(id)})
	})
}

func knownProperty(w http.ResponseWriter, req *http.Request, d FavoritesDeps, id string) bool {
	if d.Store.Get(id) == nil {
		render.Status(req, http.StatusNotFound)
		render.JSON(w, req, map[string]any{"error": "not_found", "id": id})
		return false
	}
	return true
}
