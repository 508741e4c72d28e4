package app

import (
	"context"
	"fmt"
	"time"

	"kfar_marketplace/internal/domain"
)

type QueryService struct {
	catalog  domain.Catalog
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(c domain.Catalog, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{catalog: c, cache: cache, cacheTTL: ttl}
}

// GetStore resolves one vendor's storefront: directory metadata merged with
// the vendor's slice of the aggregated catalog, defaults filled in for any
// presentation field the directory leaves empty. NotFound is never cached.
func (s *QueryService) GetStore(ctx context.Context, vendorID string) (domain.Store, error) {
	key := "store:" + vendorID
	var st domain.Store
	if ok, _ := s.cache.Get(ctx, key, &st); ok {
		return st, nil
	}

	v, ok := s.catalog.Vendor(vendorID)
	if !ok {
		return domain.Store{}, domain.ErrVendorNotFound
	}

	st = buildStore(v, s.catalog.VendorProducts(vendorID))
	_ = s.cache.Set(ctx, key, st, int(s.cacheTTL.Seconds()))
	return st, nil
}

// ListVendors returns the directory as listing summaries with product
// counts from the aggregate. Pagination is a placeholder: always page 1 of
// everything.
func (s *QueryService) ListVendors(ctx context.Context, limit int) (domain.VendorsPage, error) {
	if limit <= 0 {
		limit = 10
	}
	key := fmt.Sprintf("vendors:all:%d", limit)
	var page domain.VendorsPage
	if ok, _ := s.cache.Get(ctx, key, &page); ok {
		return page, nil
	}

	vendors := s.catalog.Vendors()
	page = domain.VendorsPage{
		Vendors:    make([]domain.VendorSummary, 0, len(vendors)),
		Pagination: domain.Pagination{Total: len(vendors), Page: 1, Limit: limit},
	}
	for _, v := range vendors {
		page.Vendors = append(page.Vendors, domain.VendorSummary{
			ID:           v.ID,
			Name:         v.Name,
			Description:  v.Description,
			Logo:         v.Logo,
			Rating:       v.Rating,
			ProductCount: len(s.catalog.VendorProducts(v.ID)),
		})
	}
	_ = s.cache.Set(ctx, key, page, int(s.cacheTTL.Seconds()))
	return page, nil
}
