package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listing-api/internal/analytics"
)

type DashboardDeps struct {
	Tallier *analytics.Tallier
}

// RegisterDashboard serves the chart data for the dashboard page. All
// numbers derive from recorded activity rather than placeholder randomness.
func RegisterDashboard(r chi.Router, d DashboardDeps) {
	r.Get("/dashboard/summary", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{"ok": true, "summary": d.Tallier.Summary()})
	})
}
