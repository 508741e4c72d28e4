package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrVendorNotFound is returned when a vendor ID matches no directory entry.
var ErrVendorNotFound = errors.New("vendor not found")

// FieldError reports the first missing required field in a submission.
type FieldError struct{ Field string }

func (e *FieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Catalog is the read surface of the aggregated static catalog. Built once
// at startup, immutable afterwards.
type Catalog interface {
	// Products returns all products across vendors in aggregation order.
	Products() []Product
	// VendorProducts returns one vendor's products, preserving
	// aggregation order. Unknown vendors return an empty slice.
	VendorProducts(vendorID string) []Product
	// Vendor looks up a directory entry.
	Vendor(vendorID string) (Vendor, bool)
	// Vendors returns the directory in its declared order.
	Vendors() []Vendor
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
