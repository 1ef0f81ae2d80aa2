package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	httpapi "github.com/yourorg/listing-api/http"
	"github.com/yourorg/listing-api/internal/analytics"
	"github.com/yourorg/listing-api/internal/archive"
	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/events"
	"github.com/yourorg/listing-api/internal/favorites"
	"github.com/yourorg/listing-api/internal/logx"
	"github.com/yourorg/listing-api/internal/query"
)

type routerDeps struct {
	Store     *catalog.Store
	Query     *query.Service
	Favorites *favorites.Store
	Tallier   *analytics.Tallier
	Pub       events.Publisher
	Archive   *archive.Writer
}

func BuildRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(logx.Middleware)
	r.Use(httprate.LimitByIP(300, 1*time.Minute))
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"ok":true}`)) })

	httpapi.RegisterListings(r, httpapi.ListingsDeps{Query: d.Query})
	httpapi.RegisterProperty(r, httpapi.PropertyDeps{Query: d.Query, Pub: d.Pub})
	httpapi.RegisterSubmit(r, httpapi.SubmitDeps{Store: d.Store, Archive: d.Archive})
	httpapi.RegisterFavorites(r, httpapi.FavoritesDeps{Favorites: d.Favorites, Store: d.Store})
	httpapi.RegisterMap(r, httpapi.MapDeps{Store: d.Store})
	httpapi.RegisterDashboard(r, httpapi.DashboardDeps{Tallier: d.Tallier})

	return r
}
