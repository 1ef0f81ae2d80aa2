package httpapi

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/yourorg/listing-api/internal/archive"
	"github.com/yourorg/listing-api/internal/canon"
	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/feed"
)

//go:embed schema/property.schema.json
var propertySchemaJSON string

var propertySchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("property.schema.json", strings.NewReader(propertySchemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile("property.schema.json")
}

type SubmitDeps struct {
	Store   *catalog.Store
	Archive *archive.Writer // optional write-behind
}

// RegisterSubmit handles the final step of the add-property form. The
// payload is schema-validated before it can touch the catalog; an id is
// assigned when the client sends none.
func RegisterSubmit(r chi.Router, d SubmitDeps) {
	r.Post("/properties/submit", func(w http.ResponseWriter, req *http.Request) {
		raw, err := io.ReadAll(io.LimitReader(req.Body, 1<<20))
		if err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "read_error", "detail": err.Error()})
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		if err := propertySchema.Validate(doc); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "validation_error", "detail": err.Error()})
			return
		}

		var listing feed.Listing
		if err := json.Unmarshal(raw, &listing); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		p, err := feed.MapListing(listing)
		if err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_listing", "detail": err.Error()})
			return
		}

		if dup := findByAddress(d.Store, p.Location); dup != "" {
			render.Status(req, http.StatusConflict)
			render.JSON(w, req, map[string]any{"error": "duplicate_address", "existing_id": dup})
			return
		}
		if err := d.Store.Insert(p); err != nil {
			if errors.Is(err, catalog.ErrDuplicateID) {
				render.Status(req, http.StatusConflict)
				render.JSON(w, req, map[string]any{"error": "duplicate_id", "detail": err.Error()})
				return
			}
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_listing", "detail": err.Error()})
			return
		}
		if d.Archive != nil {
			d.Archive.Enqueue(archive.Job{Property: p, Source: "submit", Raw: raw})
		}

		render.Status(req, http.StatusCreated)
		render.JSON(w, req, map[string]any{"ok": true, "id": p.ID, "property": p})
	})
}

func findByAddress(store *catalog.Store, loc catalog.Location) string {
	key := canon.Key(loc.Address, loc.City, loc.State, loc.ZipCode)
	if key == "" {
		return ""
	}
	for _, p := range store.All() {
		l := p.Location
		if canon.Key(l.Address, l.City, l.State, l.ZipCode) == key {
			return p.ID
		}
	}
	return ""
}
