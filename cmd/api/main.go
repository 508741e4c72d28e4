package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "kfar_marketplace/internal/adapters/http_server"
	"kfar_marketplace/internal/adapters/observability"
	redisad "kfar_marketplace/internal/adapters/redis"
	"kfar_marketplace/internal/app"
	"kfar_marketplace/internal/domain"
	"kfar_marketplace/internal/shared"
	"kfar_marketplace/internal/storage/catalog"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog: all-or-nothing load at startup, immutable afterwards
	store, issues, err := catalog.Load(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("catalog load failed")
	}
	for _, is := range issues {
		log.Warn().
			Str("vendor", is.VendorID).
			Str("product", is.ProductID).
			Str("field", is.Field).
			Msg(is.Detail)
	}
	counts := make(map[string]int, len(store.Vendors()))
	for _, v := range store.Vendors() {
		counts[v.ID] = len(store.VendorProducts(v.ID))
	}
	observability.SetCatalogGauges(counts, len(issues))
	log.Info().
		Int("vendors", len(store.Vendors())).
		Int("products", len(store.Products())).
		Int("issues", len(issues)).
		Msg("catalog loaded")

	// deps
	var cache domain.Cache = redisad.Noop{}
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	q := app.NewQueryService(store, cache, cfg.CacheTTL)
	ob := app.NewOnboardingService(log.Logger)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, O: ob}, server.RateLimit(cfg.OnboardingRPS))

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
