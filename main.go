package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourorg/listing-api/internal/analytics"
	"github.com/yourorg/listing-api/internal/archive"
	"github.com/yourorg/listing-api/internal/catalog"
	"github.com/yourorg/listing-api/internal/env"
	"github.com/yourorg/listing-api/internal/events"
	"github.com/yourorg/listing-api/internal/favorites"
	"github.com/yourorg/listing-api/internal/feed"
	"github.com/yourorg/listing-api/internal/logx"
	"github.com/yourorg/listing-api/internal/query"
	"github.com/yourorg/listing-api/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	logx.Setup(env.Get("LOG_LEVEL", "info"), env.Get("LOG_FORMAT", "") == "json")

	port := env.GetInt("PORT", 4003)
	ctx := context.Background()

	store := catalog.Seeded()
	pub := events.NewInMemory(256)

	if feedURL := env.Get("LISTING_FEED_URL", ""); feedURL != "" {
		added, err := feed.Import(ctx, feed.NewClient(feedURL), store)
		if err != nil {
			slog.Warn("feed import failed, serving seed catalog only", "err", err)
		} else {
			slog.Info("feed import complete", "added", added, "total", store.Len())
		}
	}

	var delays query.Delays
	if env.GetBool("SIMULATE_LATENCY", true) {
		delays = query.DefaultDelays()
	}
	svc := query.NewService(store, query.WithDelays(delays), query.WithPublisher(pub))

	var kv favorites.KV
	if addr := env.Get("REDIS_ADDR", ""); addr != "" {
		rds := redisx.New(addr, env.Get("REDIS_PASSWORD", ""), env.GetInt("REDIS_DB", 0))
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rds.Ping(pingCtx)
		cancel()
		if err != nil {
			slog.Warn("redis unreachable, favorites fall back to local file", "err", err)
			kv = favorites.NewFileKV(env.Get("DATA_DIR", "./data"))
		} else {
			kv = favorites.NewRedisKV(rds)
		}
	} else {
		kv = favorites.NewFileKV(env.Get("DATA_DIR", "./data"))
	}
	favs := favorites.Load(ctx, kv, favorites.WithPublisher(pub))
	slog.Info("favorites loaded", "count", favs.Len())

	var archiveWriter *archive.Writer
	if dsn := env.Get("DATABASE_URL", ""); dsn != "" {
		st, err := archive.Open(dsn)
		if err != nil {
			slog.Warn("archive disabled, cannot open database", "err", err)
		} else if err := st.Migrate(ctx); err != nil {
			slog.Warn("archive disabled, migrate failed", "err", err)
		} else {
			archiveWriter = archive.NewWriter(st, 256, 2, env.GetDuration("ARCHIVE_SAVE_TIMEOUT", 15*time.Second))
			slog.Info("archive enabled")
		}
	}

	tallier := analytics.NewTallier(store, pub)
	go tallier.Run(ctx)

	router := BuildRouter(routerDeps{
		Store:     store,
		Query:     svc,
		Favorites: favs,
		Tallier:   tallier,
		Pub:       pub,
		Archive:   archiveWriter,
	})

	slog.Info("listing-api listening", "port", port, "listings", store.Len())
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), router); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}
