package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/query"
)

type ListingsDeps struct {
	Query *query.Service
}

type ListingsRequest struct {
	Location     string `json:"location,omitempty"` // hero search bar free text, matched against city
	City         string `json:"city,omitempty"`
	PropertyType string `json:"property_type,omitempty"`
	SortBy       string `json:"sortby,omitempty"`
	MinPrice     *int   `json:"minprice,omitempty"`
	MaxPrice     *int   `json:"maxprice,omitempty"`
	Beds         *int   `json:"beds,omitempty"`
	Baths        *int   `json:"baths,omitempty"`
	Verified     *bool  `json:"verified,omitempty"`
}

func defInt(v *int, d int) int {
	if v == nil {
		return d
	}
	return *v
}

func defBool(v *bool, d bool) bool {
	if v == nil {
		return d
	}
	return *v
}

func RegisterListings(r chi.Router, d ListingsDeps) {
	// POST JSON
	r.Post("/properties", func(w http.ResponseWriter, req *http.Request) {
		var body ListingsRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		handleListingsRequest(w, req, d, body)
	})

	// GET query
	r.Get("/properties", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		var body ListingsRequest
		body.Location = q.Get("location")
		body.City = q.Get("city")
		body.PropertyType = q.Get("property_type")
		body.SortBy = q.Get("sortby")
		if v := q.Get("minprice"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				body.MinPrice = &i
			}
		}
		if v := q.Get("maxprice"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				body.MaxPrice = &i
			}
		}
		if v := q.Get("beds"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				body.Beds = &i
			}
		}
		if v := q.Get("baths"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				body.Baths = &i
			}
		}
		if v := q.Get("verified"); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				body.Verified = &b
			}
		}
		handleListingsRequest(w, req, d, body)
	})
}

func handleListingsRequest(w http.ResponseWriter, req *http.Request, d ListingsDeps, body ListingsRequest) {
	crit := criteriaFromRequest(body)
	props, err := d.Query.Properties(req.Context(), crit)
	if err != nil {
		render.Status(req, http.StatusInternalServerError)
		render.JSON(w, req, map[string]any{"error": "query_error", "detail": err.Error()})
		return
	}
	render.JSON(w, req, map[string]any{"ok": true, "count": len(props), "properties": props})
}

func criteriaFromRequest(body ListingsRequest) query.Criteria {
	city := body.City
	if city == "" {
		city = body.Location
	}
	return query.Criteria{
		City:      city,
		MinPrice:  defInt(body.MinPrice, 0),
		MaxPrice:  defInt(body.MaxPrice, 0),
		Type:      catalog.PropertyType(body.PropertyType),
		Bedrooms:  defInt(body.Beds, 0),
		Bathrooms: defInt(body.Baths, 0),
		Verified:  defBool(body.Verified, false),
		SortBy:    query.SortOrder(body.SortBy),
	}
}
