package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"kfar_marketplace/internal/adapters/observability"
	"kfar_marketplace/internal/shared"
	"kfar_marketplace/internal/storage/catalog"
)

// catalogctl validates the static catalog offline: fragment shape, per-vendor
// product ID uniqueness, image paths, category vocabulary, prices, and
// (when ASSETS_DIR is set) that every referenced image actually exists on
// disk. Exits non-zero when the catalog would fail to load or images are
// missing, so it can gate a build.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("data", cfg.DataDir).
		Str("assets", cfg.AssetsDir).
		Int("workers", cfg.CheckWorkers).
		Msg("catalogctl starting")

	store, issues, err := catalog.Load(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}
	for _, is := range issues {
		log.Warn().
			Str("vendor", is.VendorID).
			Str("product", is.ProductID).
			Str("field", is.Field).
			Msg(is.Detail)
	}

	missing := 0
	if cfg.AssetsDir != "" {
		missing = checkAssets(ctx, cfg, store)
	}

	log.Info().
		Int("vendors", len(store.Vendors())).
		Int("products", len(store.Products())).
		Int("issues", len(issues)).
		Int("missing_images", missing).
		Msg("catalog check completed")

	if missing > 0 {
		os.Exit(1)
	}
}

// checkAssets stats every referenced image under the assets dir with bounded
// concurrency and reports how many are missing.
func checkAssets(ctx context.Context, cfg shared.Config, store *catalog.Store) int {
	sem := semaphore.NewWeighted(int64(cfg.CheckWorkers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	missing := 0

	for _, p := range store.Products() {
		p := p

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			path := filepath.Join(cfg.AssetsDir, filepath.FromSlash(p.Image))
			if _, err := os.Stat(path); err != nil {
				log.Warn().
					Str("vendor", p.VendorID).
					Str("product", p.ID).
					Str("image", p.Image).
					Msg("image asset missing")
				mu.Lock()
				missing++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return missing
}
