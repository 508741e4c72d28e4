package catalog

import (
	"fmt"

	"kfar_marketplace/internal/domain"
)

// Store holds the aggregated catalog: every vendor fragment concatenated in
// directory order, each product stamped with its owning vendor. It is built
// once at startup and never mutated, so concurrent reads need no locking.
type Store struct {
	vendors  []domain.Vendor
	byID     map[string]domain.Vendor
	products []domain.Product
	byVendor map[string][]domain.Product
}

// Load reads the vendor directory and all fragments from dir and aggregates
// them. Returned issues are non-fatal data-quality findings (bad image
// paths, off-vocabulary categories, non-positive prices); duplicate product
// IDs within a vendor are an error, as is any unreadable fragment.
func Load(dir string) (*Store, []Issue, error) {
	vendors, err := loadDirectory(dir)
	if err != nil {
		return nil, nil, err
	}

	fragments := make(map[string][]domain.Product, len(vendors))
	for _, v := range vendors {
		ps, err := loadFragment(dir, v.ID)
		if err != nil {
			return nil, nil, err
		}
		fragments[v.ID] = ps
	}
	return Build(vendors, fragments)
}

// Build aggregates already-decoded fragments. Split from Load so tests can
// construct a Store without touching disk.
func Build(vendors []domain.Vendor, fragments map[string][]domain.Product) (*Store, []Issue, error) {
	s := &Store{
		vendors:  vendors,
		byID:     make(map[string]domain.Vendor, len(vendors)),
		byVendor: make(map[string][]domain.Product, len(vendors)),
	}
	var issues []Issue

	for _, v := range vendors {
		if _, dup := s.byID[v.ID]; dup {
			return nil, nil, fmt.Errorf("duplicate vendor %q in directory", v.ID)
		}
		s.byID[v.ID] = v

		ps := fragments[v.ID]
		stamped := make([]domain.Product, len(ps))
		for i, p := range ps {
			p.VendorID = v.ID
			p.VendorName = v.Name
			stamped[i] = p
		}

		found, err := validate(v, stamped)
		if err != nil {
			return nil, nil, err
		}
		issues = append(issues, found...)

		start := len(s.products)
		s.products = append(s.products, stamped...)
		s.byVendor[v.ID] = s.products[start : start+len(stamped) : start+len(stamped)]
	}
	return s, issues, nil
}

func (s *Store) Products() []domain.Product { return s.products }

func (s *Store) VendorProducts(vendorID string) []domain.Product {
	return s.byVendor[vendorID]
}

func (s *Store) Vendor(vendorID string) (domain.Vendor, bool) {
	v, ok := s.byID[vendorID]
	return v, ok
}

func (s *Store) Vendors() []domain.Vendor { return s.vendors }
