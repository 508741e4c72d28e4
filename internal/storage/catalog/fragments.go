package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kfar_marketplace/internal/domain"
)

// rawProduct tolerates the fragment shape drift: the older Teva Deli
// fragment spells the Hebrew name "nameHe" while the newer fragments use
// "nameHebrew", and some fragments carry a "vendor" display-name field that
// the aggregator overrides anyway.
type rawProduct struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameHe        string   `json:"nameHe"`
	NameHebrew    string   `json:"nameHebrew"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	InStock       bool     `json:"inStock"`
	IsVegan       bool     `json:"isVegan"`
	IsKosher      bool     `json:"isKosher"`
	Badge         string   `json:"badge"`
	Tags          []string `json:"tags"`
}

type fragmentFile struct {
	Products []rawProduct `json:"products"`
}

func (p rawProduct) normalize() domain.Product {
	he := p.NameHe
	if he == "" {
		he = p.NameHebrew
	}
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		NameHe:        he,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Image:         p.Image,
		InStock:       p.InStock,
		IsVegan:       p.IsVegan,
		IsKosher:      p.IsKosher,
		Badge:         p.Badge,
		Tags:          p.Tags,
	}
}

// loadFragment reads one vendor's product fragment from dir/<vendorID>.json.
// Any read or decode failure is fatal to the whole load; there is no
// partial-catalog fallback.
func loadFragment(dir, vendorID string) ([]domain.Product, error) {
	path := filepath.Join(dir, vendorID+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fragment %s: %w", path, err)
	}
	var f fragmentFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode fragment %s: %w", path, err)
	}
	out := make([]domain.Product, 0, len(f.Products))
	for _, rp := range f.Products {
		out = append(out, rp.normalize())
	}
	return out, nil
}

// loadDirectory reads the ordered canonical vendor directory. Directory
// order defines fragment aggregation order.
func loadDirectory(dir string) ([]domain.Vendor, error) {
	path := filepath.Join(dir, "vendors.json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}
	var vs []domain.Vendor
	if err := json.Unmarshal(b, &vs); err != nil {
		return nil, fmt.Errorf("decode directory %s: %w", path, err)
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("directory %s is empty", path)
	}
	return vs, nil
}
