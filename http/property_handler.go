package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-api/internal/events"
	"github.com/yourorg/listing-api/internal/query"
)

type PropertyDeps struct {
	Query *query.Service
	Pub   events.Publisher
}

func RegisterProperty(r chi.Router, d PropertyDeps) {
	r.Get("/properties/{propertyID}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "propertyID")
		p, err := d.Query.PropertyByID(req.Context(), id)
		if err != nil {
			render.Status(req, http.StatusInternalServerError)
			render.JSON(w, req, map[string]any{"error": "query_error", "detail": err.Error()})
			return
		}
		if p == nil {
			// absence is an expected outcome, the UI renders a not-found state
			render.Status(req, http.StatusNotFound)
			render.JSON(w, req, map[string]any{"error": "not_found", "id": id})
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "property": p})
	})

	r.Get("/properties/{propertyID}/similar", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "propertyID")
		count := 3
		if v := req.URL.Query().Get("count"); v != "" {
			if i, err := strconv.Atoi(v); err == nil && i > 0 {
				count = i
			}
		}
		props, err := d.Query.SimilarProperties(req.Context(), id, count)
		if err != nil {
			render.Status(req, http.StatusInternalServerError)
			render.JSON(w, req, map[string]any{"error": "query_error", "detail": err.Error()})
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "count": len(props), "properties": props})
	})

	r.Post("/properties/{propertyID}/inquiry", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "propertyID")
		p, err := d.Query.PropertyByID(req.Context(), id)
		if err != nil {
			render.Status(req, http.StatusInternalServerError)
			render.JSON(w, req, map[string]any{"error": "query_error", "detail": err.Error()})
			return
		}
		if p == nil {
			render.Status(req, http.StatusNotFound)
			render.JSON(w, req, map[string]any{"error": "not_found", "id": id})
			return
		}
		if d.Pub != nil {
			d.Pub.Publish(req.Context(), events.Activity{Kind: events.KindInquiryCreated, PropertyID: id})
		}
		render.Status(req, http.StatusAccepted)
		render.JSON(w, req, map[string]any{"ok": true, "id": id, "agent": p.Agent})
	})

	r.Get("/featured", func(w http.ResponseWriter, req *http.Request) {
		props, err := d.Query.FeaturedProperties(req.Context())
		if err != nil {
			render.Status(req, http.StatusInternalServerError)
			render.JSON(w, req, map[string]any{"error": "query_error", "detail": err.Error()})
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "count": len(props), "properties": props})
	})

	r.Get("/market/stats", func(w http.ResponseWriter, req *http.Request) {
		stats, err := d.Query.MarketStats(req.Context())
		if err != nil {
			render.Status(req, http.StatusInternalServerError)
			render.JSON(w, req, map[string]any{"error": "query_error", "detail": err.Error()})
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "stats": stats})
	})
}
