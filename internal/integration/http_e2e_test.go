package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	httpserver "kfar_marketplace/internal/adapters/http_server"
	"kfar_marketplace/internal/app"
	"kfar_marketplace/internal/domain"
	"kfar_marketplace/internal/storage/catalog"
)

type nopCache struct{}

func (nopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (nopCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (nopCache) Del(ctx context.Context, key string) error { return nil }

// Full wiring over the shipped data directory, no fakes.
func newE2EServer(t *testing.T) (*httptest.Server, *catalog.Store) {
	t.Helper()
	store, issues, err := catalog.Load(filepath.Join("..", "..", "data"))
	if err != nil {
		t.Fatalf("load shipped catalog: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("shipped catalog has data-quality issues: %v", issues)
	}

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Q: app.NewQueryService(store, nopCache{}, time.Minute),
		O: app.NewOnboardingService(zerolog.Nop()),
	}, httpserver.RateLimit(100))

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts, store
}

func TestE2E_ShippedCatalogAggregation(t *testing.T) {
	_, store := newE2EServer(t)

	sum := 0
	for _, v := range store.Vendors() {
		sum += len(store.VendorProducts(v.ID))
	}
	if got := len(store.Products()); got != sum || got == 0 {
		t.Fatalf("aggregate length %d, per-vendor sum %d", got, sum)
	}

	// directory order defines aggregation order; first vendor's products lead
	first := store.Vendors()[0]
	if store.Products()[0].VendorID != first.ID {
		t.Fatalf("first product belongs to %s, want %s", store.Products()[0].VendorID, first.ID)
	}
}

func TestE2E_StoreEndpointForEveryVendor(t *testing.T) {
	ts, store := newE2EServer(t)

	for _, v := range store.Vendors() {
		var st domain.Store
		res, err := http.Get(ts.URL + "/api/vendor/" + v.ID)
		if err != nil {
			t.Fatalf("GET %s: %v", v.ID, err)
		}
		if res.StatusCode != http.StatusOK {
			t.Fatalf("vendor %s: status %d", v.ID, res.StatusCode)
		}
		if err := json.NewDecoder(res.Body).Decode(&st); err != nil {
			t.Fatalf("decode %s: %v", v.ID, err)
		}
		res.Body.Close()

		if st.ID != v.ID || st.StoreName != v.Name {
			t.Fatalf("vendor %s: store %+v", v.ID, st)
		}
		if len(st.Products) != len(store.VendorProducts(v.ID)) {
			t.Fatalf("vendor %s: %d products over HTTP, %d in catalog", v.ID, len(st.Products), len(store.VendorProducts(v.ID)))
		}
		for _, p := range st.Products {
			if p.VendorID != v.ID {
				t.Fatalf("vendor %s: foreign product %s/%s", v.ID, p.VendorID, p.ID)
			}
		}
	}
}

func TestE2E_UnknownVendorIs404(t *testing.T) {
	ts, _ := newE2EServer(t)

	res, err := http.Get(ts.URL + "/api/vendor/no-such-vendor")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Vendor not found" {
		t.Fatalf("body: %v", body)
	}
}

func TestE2E_VendorListingMatchesDirectory(t *testing.T) {
	ts, store := newE2EServer(t)

	var page domain.VendorsPage
	res, err := http.Get(ts.URL + "/api/vendors")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(page.Vendors) != len(store.Vendors()) {
		t.Fatalf("listing %d vendors, directory has %d", len(page.Vendors), len(store.Vendors()))
	}
	if page.Pagination.Total != len(page.Vendors) {
		t.Fatalf("pagination: %+v", page.Pagination)
	}
	// listing and store view are derived from the same record, so names agree
	for i, v := range store.Vendors() {
		if page.Vendors[i].ID != v.ID || page.Vendors[i].Name != v.Name {
			t.Fatalf("listing drifted from directory at %d: %+v vs %+v", i, page.Vendors[i], v)
		}
		if page.Vendors[i].ProductCount != len(store.VendorProducts(v.ID)) {
			t.Fatalf("vendor %s: product count %d", v.ID, page.Vendors[i].ProductCount)
		}
	}
}
