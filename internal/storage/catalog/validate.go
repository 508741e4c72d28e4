package catalog

import (
	"fmt"
	"slices"
	"strings"

	"kfar_marketplace/internal/domain"
)

// Issue is a non-fatal data-quality finding surfaced at load time. The old
// workflow patched these by editing source files after the fact; here they
// are reported up front and the data files fixed at the source.
type Issue struct {
	VendorID  string
	ProductID string
	Field     string
	Detail    string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s/%s %s: %s", i.VendorID, i.ProductID, i.Field, i.Detail)
}

// validate checks one stamped fragment. Duplicate product IDs within the
// vendor are an error (IDs are unique per vendor, vendor-qualified
// globally); everything else degrades to an Issue.
func validate(v domain.Vendor, ps []domain.Product) ([]Issue, error) {
	var issues []Issue
	seen := make(map[string]struct{}, len(ps))

	for _, p := range ps {
		if p.ID == "" {
			return nil, fmt.Errorf("vendor %s: product %q has no id", v.ID, p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("vendor %s: duplicate product id %s", v.ID, p.ID)
		}
		seen[p.ID] = struct{}{}

		if !strings.HasPrefix(p.Image, "/") {
			issues = append(issues, Issue{
				VendorID: v.ID, ProductID: p.ID, Field: "image",
				Detail: fmt.Sprintf("path %q does not start with /", p.Image),
			})
		}
		if len(v.Categories) > 0 && !slices.Contains(v.Categories, p.Category) {
			issues = append(issues, Issue{
				VendorID: v.ID, ProductID: p.ID, Field: "category",
				Detail: fmt.Sprintf("%q not in vendor vocabulary", p.Category),
			})
		}
		if p.Price <= 0 {
			issues = append(issues, Issue{
				VendorID: v.ID, ProductID: p.ID, Field: "price",
				Detail: fmt.Sprintf("non-positive price %v", p.Price),
			})
		}
	}
	return issues, nil
}
